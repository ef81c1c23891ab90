package constants

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	OutDir        string        `env:"OUT_DIR" envDefault:"./out"`
	Renderer      string        `env:"ABC_RENDERER" envDefault:"abc2midi"`
	RenderTimeout time.Duration `env:"RENDER_TIMEOUT" envDefault:"60s"`
	StripTempo    bool          `env:"STRIP_TEMPO" envDefault:"true"`
	Addr          string        `env:"ADDR" envDefault:":8080"`
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"500ms"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, errors.Wrap(err, "could not parse environment")
	}
	return c, nil
}

const ABCExt = ".abc"
