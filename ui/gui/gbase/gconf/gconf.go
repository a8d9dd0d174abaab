package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "tapchess.json"

type Config struct {
	Theme     string `json:"theme"`      // classic/dark
	CellSize  int    `json:"cell_size"`  // pixels per square
	AssetsDir string `json:"assets_dir"` // piece images and fonts
	LogLevel  string `json:"log_level"`  // debug/info/warn/error
	Debug     bool   `json:"debug"`      // TPS + FEN overlay
}

func defaultConfig() Config {
	return Config{
		Theme:     "classic",
		CellSize:  90,
		AssetsDir: "assets",
		LogLevel:  "info",
		Debug:     false,
	}
}

// NewGUIConfig reads file, falling back to defaults when it does not
// exist. Pass "" for the default location.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(file string) error {
	if file == "" {
		file = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "classic" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	// below 32px the sprites degenerate, above 160px the window no
	// longer fits small displays
	if c.CellSize < 32 || c.CellSize > 160 {
		c.CellSize = def.CellSize
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}
