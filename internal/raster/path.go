package raster

import (
	"fmt"
	"strconv"
	"strings"
)

type segment struct {
	cmd byte
	pts []float64
}

var arity = map[byte]int{'M': 2, 'L': 2, 'C': 6, 'H': 1, 'V': 1, 'Z': 0}

// parsePath 解析只含绝对坐标 M/L/C/H/V/Z 命令的路径，H/V 会展开为 L。
func parsePath(d string) ([]segment, error) {
	fields := strings.Fields(strings.ReplaceAll(d, ",", " "))
	var (
		out     []segment
		cmd     byte
		curX    float64
		curY    float64
		startX  float64
		startY  float64
		pending []float64
	)
	flush := func() error {
		n := arity[cmd]
		if n == 0 {
			return nil
		}
		if len(pending)%n != 0 {
			return fmt.Errorf("path command %c expects %d numbers, got %d", cmd, n, len(pending))
		}
		for i := 0; i < len(pending); i += n {
			args := pending[i : i+n]
			switch cmd {
			case 'H':
				out = append(out, segment{cmd: 'L', pts: []float64{args[0], curY}})
				curX = args[0]
			case 'V':
				out = append(out, segment{cmd: 'L', pts: []float64{curX, args[0]}})
				curY = args[0]
			default:
				c := cmd
				if c == 'M' && i > 0 {
					c = 'L'
				}
				out = append(out, segment{cmd: c, pts: append([]float64(nil), args...)})
				curX, curY = args[n-2], args[n-1]
				if c == 'M' {
					startX, startY = curX, curY
				}
			}
		}
		pending = pending[:0]
		return nil
	}

	for _, field := range fields {
		if len(field) == 1 && strings.ContainsAny(field, "MLCHVZ") {
			if err := flush(); err != nil {
				return nil, err
			}
			cmd = field[0]
			if cmd == 'Z' {
				out = append(out, segment{cmd: 'Z'})
				curX, curY = startX, startY
			}
			continue
		}
		if cmd == 0 {
			return nil, fmt.Errorf("path must start with a command")
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid path number %q: %w", field, err)
		}
		pending = append(pending, v)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}
