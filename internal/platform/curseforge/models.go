package curseforge

type envelope[T any] struct {
	Data       T          `json:"data"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	TotalCount int `json:"totalCount"`
}

type mod struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Slug               string  `json:"slug"`
	ClassID            int     `json:"classId"`
	DownloadCount      float64 `json:"downloadCount"`
	ThumbsUpCount      float64 `json:"thumbsUpCount"`
	GamePopularityRank float64 `json:"gamePopularityRank"`
	Logo               *struct {
		URL string `json:"url"`
	} `json:"logo"`
	Links struct {
		WebsiteURL string `json:"websiteUrl"`
	} `json:"links"`
}

func (m mod) logoURL() string {
	if m.Logo == nil {
		return ""
	}
	return m.Logo.URL
}

type file struct {
	ID                   int                   `json:"id"`
	DisplayName          string                `json:"displayName"`
	FileName             string                `json:"fileName"`
	FileDate             string                `json:"fileDate"`
	DownloadCount        float64               `json:"downloadCount"`
	GameVersions         []string              `json:"gameVersions"`
	SortableGameVersions []sortableGameVersion `json:"sortableGameVersions"`
}

type sortableGameVersion struct {
	GameVersionTypeID int `json:"gameVersionTypeId"`
}

// classTypes 将 CurseForge classId 映射到通用项目类别。
var classTypes = map[int]string{
	5:     "plugin",
	6:     "mod",
	12:    "resourcepack",
	17:    "world",
	4471:  "modpack",
	4546:  "shader",
	6552:  "shader",
	6768:  "shader",
	6945:  "datapack",
	84200: "canvas",
	84203: "optifine",
}

func projectType(classID int) string {
	if t, ok := classTypes[classID]; ok {
		return t
	}
	return "mod"
}

// knownLoaders 出现在 gameVersions 中时视为加载器而非游戏版本。
var knownLoaders = map[string]bool{
	"Forge": true, "Fabric": true, "NeoForge": true, "Quilt": true, "Rift": true,
	"LiteLoader": true, "Cauldron": true, "ModLoader": true, "Canvas": true,
	"Iris": true, "OptiFine": true, "Sodium": true,
}

var loaderTypeIDs = map[int]string{
	68441: "NeoForge",
}

// split 将文件的 gameVersions 拆分为加载器与游戏版本，加载器去重并保持出现顺序。
func (f file) split() (loaders, versions []string) {
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			loaders = append(loaders, name)
		}
	}
	for _, v := range f.SortableGameVersions {
		if name, ok := loaderTypeIDs[v.GameVersionTypeID]; ok {
			add(name)
		}
	}
	for _, v := range f.GameVersions {
		if knownLoaders[v] {
			add(v)
			continue
		}
		versions = append(versions, v)
	}
	return loaders, versions
}
