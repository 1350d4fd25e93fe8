package assimp

import (
	"fmt"

	"github.com/Faultbox/assimp-go/internal/config"
	"github.com/Faultbox/assimp-go/internal/logger"
	"github.com/Faultbox/assimp-go/pkg/assimp/native"
	"go.uber.org/zap"
)

// NewImporterFromConfig loads configuration from path (the standard
// locations when empty, then ASSIMP_* environment overrides), builds the
// logger it describes, opens libassimp and returns an Importer that owns
// both.
func NewImporterFromConfig(path string) (*Importer, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return importerFromConfig(cfg, func(candidates []string) (Gateway, func() string, error) {
		lib, err := native.Open(candidates...)
		if err != nil {
			return nil, nil, err
		}
		return lib, func() string { return lib.Path() + " " + lib.Version().String() }, nil
	})
}

// gatewayOpener opens the gateway and returns a description for logging.
type gatewayOpener func(candidates []string) (Gateway, func() string, error)

func importerFromConfig(cfg *config.Config, open gatewayOpener) (*Importer, error) {
	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log, err := logger.New(cfg.Logging.Level, fileCfg, true)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	log = log.Named("assimp")

	flags, err := ParsePostProcess(cfg.Import.PostProcess)
	if err != nil {
		return nil, fmt.Errorf("import.post_process: %w", err)
	}

	gw, describe, err := open(cfg.Library.Candidates())
	if err != nil {
		return nil, fmt.Errorf("opening libassimp: %w", err)
	}

	im := NewImporter(gw,
		WithLogger(log),
		WithDefaultFlags(flags),
		WithValidation(cfg.Import.Validate))
	im.ownsGateway = true
	im.ownsLog = true

	log.Info("importer ready",
		zap.String("library", describe()),
		zap.Stringer("flags", flags),
		zap.Bool("validate", cfg.Import.Validate))
	return im, nil
}
