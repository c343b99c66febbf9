// Package config provides configuration loading and validation for boxplan.
package config

// Config is the root configuration.
type Config struct {
	Planner PlannerConfig `json:"planner" mapstructure:"planner"`
	History HistoryConfig `json:"history" mapstructure:"history"`
}

// PlannerConfig describes how to invoke the external planner. Cmd is an
// argv template; {domain}, {problem} and {plan} placeholders are replaced
// with file paths at run time.
type PlannerConfig struct {
	Cmd         []string `json:"cmd"                     mapstructure:"cmd"`
	Domain      string   `json:"domain,omitempty"        mapstructure:"domain"`
	WorkDir     string   `json:"work_dir,omitempty"      mapstructure:"work_dir"`
	KeepWorkDir bool     `json:"keep_work_dir,omitempty" mapstructure:"keep_work_dir"`
}

// HistoryConfig controls the solve-run history store.
type HistoryConfig struct {
	Enabled  bool `json:"enabled"             mapstructure:"enabled"`
	KeepLast int  `json:"keep_last,omitempty" mapstructure:"keep_last"`
}

// Default returns the configuration used when no config file exists.
// Without a planner cmd only generate and parse-plan work.
func Default() Config {
	return Config{
		History: HistoryConfig{Enabled: true, KeepLast: 50},
	}
}
