package config

import (
	_ "github.com/modfolio/modfolio/internal/platform/curseforge"
	_ "github.com/modfolio/modfolio/internal/platform/hangar"
	_ "github.com/modfolio/modfolio/internal/platform/modrinth"
	_ "github.com/modfolio/modfolio/internal/platform/spigot"
)
