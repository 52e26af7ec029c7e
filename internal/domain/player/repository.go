package player

import "context"

// Directory describes read access to the immutable player identity table.
type Directory interface {
	FindByName(ctx context.Context, name string) (Player, bool, error)
	ListNames(ctx context.Context) ([]string, error)
}
