//go:build nodesktop

package desktop

import "context"

func Run(ctx context.Context, cfg Config) error {
	return ErrUnavailable
}
