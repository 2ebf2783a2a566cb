package spigot

import "time"

type rating struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type resource struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Tag         string  `json:"tag"`
	Downloads   float64 `json:"downloads"`
	Likes       float64 `json:"likes"`
	Rating      rating  `json:"rating"`
	ReleaseDate int64   `json:"releaseDate"`
	UpdateDate  int64   `json:"updateDate"`
}

type version struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ReleaseDate int64   `json:"releaseDate"`
	Downloads   float64 `json:"downloads"`
}

type author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// unix 把 Spiget 的秒级时间戳转换为 UTC 时间，0 表示未知。
func unix(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
