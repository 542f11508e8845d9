package config

// Config is the root evaluation configuration.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Report   ReportConfig   `yaml:"report"`
	Log      LogConfig      `yaml:"log"`
}

// AnalyzerConfig holds the transducers and the lookup executable.
type AnalyzerConfig struct {
	LookupBin    string `yaml:"lookup_bin"    env:"EVAL_LOOKUP_BIN"    env-default:"hfst-lookup"`
	AnalyzerPath string `yaml:"analyzer_path" env:"EVAL_ANALYZER_PATH"`
	// TranslitPath enables stem transliteration when set.
	TranslitPath string `yaml:"translit_path" env:"EVAL_TRANSLIT_PATH"`
}

// CorpusConfig holds corpus input settings.
type CorpusConfig struct {
	Path         string `yaml:"path"           env:"EVAL_CORPUS_PATH"    env-default:"STDIN"`
	DropFirstRow bool   `yaml:"drop_first_row" env:"EVAL_DROP_FIRST_ROW" env-default:"false"`
	NormalizeNFC bool   `yaml:"normalize_nfc"  env:"EVAL_NORMALIZE_NFC"  env-default:"false"`
}

// ReportConfig holds output settings.
type ReportConfig struct {
	Format     string   `yaml:"format"      env:"EVAL_OUTPUT_FORMAT" env-default:"table"`
	DetailsDir string   `yaml:"details_dir" env:"EVAL_DETAILS_DIR"`
	Metrics    []string `yaml:"metrics"     env:"EVAL_METRICS"       env-separator:","`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
