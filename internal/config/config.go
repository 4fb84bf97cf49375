package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio = "stdio"

	// Default values
	DefaultPDFPath     = "./questions.pdf"
	DefaultOutputPath  = "questions.json"
	DefaultQuizPath    = "questions.json"
	DefaultStartPage   = 1
	DefaultEndPage     = 0 // last page
	DefaultMarker      = "+++"
	DefaultXTolerance  = 1.0
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
	DefaultServerName  = "pdf-quiz"

	// EnvPrefix is prepended to every key when read from the environment
	EnvPrefix = "PDF_QUIZ"
)

// Flag and key names shared by viper, pflag and the environment
const (
	KeyPDF         = "pdf"
	KeyOutput      = "output"
	KeyStart       = "start"
	KeyEnd         = "end"
	KeyQuiz        = "quiz"
	KeyMarker      = "marker"
	KeyXTolerance  = "xtolerance"
	KeyLogLevel    = "loglevel"
	KeyMaxFileSize = "maxfilesize"
	KeyDir         = "dir"
	KeyMode        = "mode"
	KeyConfig      = "config"
)

// Config holds all configuration for the extractor, the quiz runner and the
// MCP server
type Config struct {
	// Extraction
	PDFPath    string
	OutputPath string
	StartPage  int
	EndPage    int
	Marker     string
	XTolerance float64

	// Quiz
	QuizPath string

	// MCP server
	Mode         string
	PDFDirectory string
	ServerName   string
	Version      string

	// Application
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
	ConfigFile  string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		PDFPath:      DefaultPDFPath,
		OutputPath:   DefaultOutputPath,
		StartPage:    DefaultStartPage,
		EndPage:      DefaultEndPage,
		Marker:       DefaultMarker,
		XTolerance:   DefaultXTolerance,
		QuizPath:     DefaultQuizPath,
		Mode:         ModeStdio,
		PDFDirectory: currentDir,
		ServerName:   DefaultServerName,
		Version:      "dev",
		LogLevel:     DefaultLogLevel,
		MaxFileSize:  DefaultMaxFileSize,
	}
}

// DefineGlobalFlags adds the flags every command understands
func DefineGlobalFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String(KeyLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")
	fs.String(KeyConfig, "", "Optional config file (yaml, toml or json)")
}

// DefineExtractFlags adds the flags of the extract command
func DefineExtractFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.StringP(KeyPDF, "p", d.PDFPath, "Path to the PDF file")
	fs.StringP(KeyOutput, "o", d.OutputPath, "Path of the JSON output file")
	fs.IntP(KeyStart, "s", d.StartPage, "First page to scan (1-indexed)")
	fs.IntP(KeyEnd, "e", d.EndPage, "Last page to scan, inclusive (0 = last page)")
	defineParserFlags(fs, d)
}

// DefineServeFlags adds the flags of the MCP server command
func DefineServeFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String(KeyMode, d.Mode, "Transport mode (stdio)")
	fs.String(KeyDir, d.PDFDirectory, "Directory the tools may read from and write to")
	defineParserFlags(fs, d)
}

func defineParserFlags(fs *pflag.FlagSet, d *Config) {
	fs.String(KeyMarker, d.Marker, "Suffix that marks the correct option")
	fs.Float64(KeyXTolerance, d.XTolerance, "Horizontal gap in points above which glyphs are separated by a space")
	fs.Int64(KeyMaxFileSize, d.MaxFileSize, "Maximum PDF file size in bytes")
}

// Load builds a configuration from defaults, an optional config file, the
// environment and the given flags, in increasing order of precedence
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		cfg.ConfigFile = file
	}

	populateConfigFromViper(v, cfg)

	if cfg.PDFDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.PDFDirectory); err == nil {
			cfg.PDFDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newViper creates an isolated viper instance carrying the defaults
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPDF, cfg.PDFPath)
	v.SetDefault(KeyOutput, cfg.OutputPath)
	v.SetDefault(KeyStart, cfg.StartPage)
	v.SetDefault(KeyEnd, cfg.EndPage)
	v.SetDefault(KeyQuiz, cfg.QuizPath)
	v.SetDefault(KeyMarker, cfg.Marker)
	v.SetDefault(KeyXTolerance, cfg.XTolerance)
	v.SetDefault(KeyLogLevel, cfg.LogLevel)
	v.SetDefault(KeyMaxFileSize, cfg.MaxFileSize)
	v.SetDefault(KeyDir, cfg.PDFDirectory)
	v.SetDefault(KeyMode, cfg.Mode)
	v.SetDefault(KeyConfig, "")
	return v
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(v *viper.Viper, cfg *Config) {
	cfg.PDFPath = v.GetString(KeyPDF)
	cfg.OutputPath = v.GetString(KeyOutput)
	cfg.StartPage = v.GetInt(KeyStart)
	cfg.EndPage = v.GetInt(KeyEnd)
	cfg.QuizPath = v.GetString(KeyQuiz)
	cfg.Marker = v.GetString(KeyMarker)
	cfg.XTolerance = v.GetFloat64(KeyXTolerance)
	cfg.LogLevel = v.GetString(KeyLogLevel)
	cfg.MaxFileSize = v.GetInt64(KeyMaxFileSize)
	cfg.PDFDirectory = v.GetString(KeyDir)
	cfg.Mode = v.GetString(KeyMode)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.StartPage < 1 {
		return fmt.Errorf("start page must be at least 1, got %d", c.StartPage)
	}
	if c.EndPage < 0 {
		return fmt.Errorf("end page cannot be negative, got %d", c.EndPage)
	}
	if c.EndPage != 0 && c.EndPage < c.StartPage {
		return fmt.Errorf("end page %d is before start page %d", c.EndPage, c.StartPage)
	}

	if c.Marker == "" {
		return errors.New("answer marker cannot be empty")
	}
	if strings.ContainsAny(c.Marker, "\n\r\t") {
		return fmt.Errorf("answer marker %q must fit on one line", c.Marker)
	}
	if c.XTolerance < 0 {
		return errors.New("x tolerance cannot be negative")
	}

	if c.Mode != ModeStdio {
		return fmt.Errorf("mode must be '%s'", ModeStdio)
	}
	if c.PDFDirectory == "" {
		return errors.New("PDF directory cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{PDF: %s, Output: %s, Pages: %d-%d, Marker: %q, Quiz: %s, Dir: %s, LogLevel: %s, MaxFileSize: %d}",
		c.PDFPath, c.OutputPath, c.StartPage, c.EndPage, c.Marker, c.QuizPath, c.PDFDirectory, c.LogLevel, c.MaxFileSize)
}
