package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Database   DatabaseConfig   `yaml:"database"`
	Export     ExportConfig     `yaml:"export"`
	Server     ServerConfig     `yaml:"server"`
}

// Lines selectable via simulation.line.
const (
	LineJobShop = "jobshop"
	LineScada   = "scada"
)

// KnownScenarios lists the post-hoc transform profiles the scenario layer
// recognizes.
var KnownScenarios = []string{"baseline", "lean", "high_demand", "aging_equipment"}

// SimulationConfig drives the generation engine. Start and End are parsed
// from StartDate/EndDate during Validate.
type SimulationConfig struct {
	Seed               int64             `yaml:"seed"`
	StartDate          string            `yaml:"start_date"`
	EndDate            string            `yaml:"end_date"`
	Line               string            `yaml:"line"`
	OrderCount         int               `yaml:"order_count"`          // jobshop demand volume
	DailyOrderBaseline int               `yaml:"daily_order_baseline"` // scada orders per working day
	Scenarios          []string          `yaml:"scenarios"`
	Maintenance        MaintenanceConfig `yaml:"maintenance"`

	Start time.Time `yaml:"-"`
	End   time.Time `yaml:"-"`
}

// MaintenanceConfig bounds the randomized maintenance cadence.
type MaintenanceConfig struct {
	LeadMinDays int `yaml:"lead_min_days"`
	LeadMaxDays int `yaml:"lead_max_days"`
	GapMinDays  int `yaml:"gap_min_days"`
	GapMaxDays  int `yaml:"gap_max_days"`
}

// DatabaseConfig holds the optional warehouse sink. An empty DSN disables
// persistence; a postgres DSN selects the postgres driver, anything else is
// treated as a SQLite path.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// ExportConfig holds the CSV export settings.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig holds the optional read-only dataset API settings.
type ServerConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

const dateLayout = "2006-01-02"

// Load reads the configuration from the given path and applies defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a ready-to-run configuration without a file.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	s := &c.Simulation
	if s.Seed == 0 {
		s.Seed = 42
	}
	if s.StartDate == "" {
		s.StartDate = "2024-01-01"
	}
	if s.EndDate == "" {
		s.EndDate = "2024-12-31"
	}
	if s.Line == "" {
		s.Line = LineJobShop
	}
	if s.OrderCount == 0 {
		s.OrderCount = 2400
	}
	if s.DailyOrderBaseline == 0 {
		s.DailyOrderBaseline = 8
	}
	if len(s.Scenarios) == 0 {
		s.Scenarios = []string{"baseline"}
	}
	m := &s.Maintenance
	if m.LeadMinDays == 0 && m.LeadMaxDays == 0 {
		m.LeadMinDays, m.LeadMaxDays = 14, 22
	}
	if m.GapMinDays == 0 && m.GapMaxDays == 0 {
		m.GapMinDays, m.GapMaxDays = 18, 25
	}

	if c.Export.Dir == "" {
		c.Export.Dir = "./data"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec == 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.CacheTTLSeconds == 0 {
		c.Server.CacheTTLSeconds = 300
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 5
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 2
	}
	if c.Database.ConnMaxLifetimeMinutes == 0 {
		c.Database.ConnMaxLifetimeMinutes = 30
	}
}

// Validate fails fast on configuration misuse so no generation work starts
// on a broken setup. It also parses the simulation horizon.
func (c *Config) Validate() error {
	s := &c.Simulation

	start, err := time.ParseInLocation(dateLayout, s.StartDate, time.UTC)
	if err != nil {
		return fmt.Errorf("config: invalid simulation.start_date %q: %w", s.StartDate, err)
	}
	end, err := time.ParseInLocation(dateLayout, s.EndDate, time.UTC)
	if err != nil {
		return fmt.Errorf("config: invalid simulation.end_date %q: %w", s.EndDate, err)
	}
	if end.Before(start) {
		return fmt.Errorf("config: simulation.end_date %s is before start_date %s", s.EndDate, s.StartDate)
	}
	s.Start, s.End = start, end

	if s.Line != LineJobShop && s.Line != LineScada {
		return fmt.Errorf("config: unknown simulation.line %q (want %q or %q)", s.Line, LineJobShop, LineScada)
	}
	if s.OrderCount <= 0 {
		return fmt.Errorf("config: simulation.order_count must be positive, got %d", s.OrderCount)
	}
	if s.DailyOrderBaseline <= 0 {
		return fmt.Errorf("config: simulation.daily_order_baseline must be positive, got %d", s.DailyOrderBaseline)
	}
	for _, sc := range s.Scenarios {
		if !knownScenario(sc) {
			return fmt.Errorf("config: unknown scenario %q (known: %v)", sc, KnownScenarios)
		}
	}

	m := s.Maintenance
	if m.LeadMinDays <= 0 || m.LeadMaxDays < m.LeadMinDays {
		return fmt.Errorf("config: invalid maintenance lead window [%d, %d]", m.LeadMinDays, m.LeadMaxDays)
	}
	if m.GapMinDays <= 0 || m.GapMaxDays < m.GapMinDays {
		return fmt.Errorf("config: invalid maintenance gap window [%d, %d]", m.GapMinDays, m.GapMaxDays)
	}

	if c.Server.Enabled && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("config: invalid server.port %d", c.Server.Port)
	}
	return nil
}

func knownScenario(name string) bool {
	for _, s := range KnownScenarios {
		if s == name {
			return true
		}
	}
	return false
}
