package configs

import "github.com/rotisserie/eris"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Storage selects the ledger backend. The memory driver keeps everything in
// process and is meant for local runs; state is lost on restart.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Validate rejects unknown drivers.
func (c Storage) Validate() error {
	switch c.Driver {
	case StoragePostgres, StorageMemory:
		return nil
	}
	return eris.Errorf("unknown storage driver %q", c.Driver)
}
