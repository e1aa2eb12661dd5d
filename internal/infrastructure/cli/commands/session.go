package commands

import (
	"context"

	"github.com/doeshing/movierec-go/internal/app"
	configinfra "github.com/doeshing/movierec-go/internal/infrastructure/config"
)

// Session hands commands their dependencies. The container is built on first
// use so commands such as version and config init work without a database.
type Session interface {
	Container(ctx context.Context) (*app.Container, error)
	ConfigLoader() *configinfra.FileLoader
}
