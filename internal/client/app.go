package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-product-catalog/internal/adapter"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/models"
)

const usage = `usage:
  list [page] [per_page]     print one page of products
  create <name> <inventory>  create a product
  version                    print the server version
  health                     check the server and its storage`

type command func(ctx context.Context, args []string) error

// App runs one catalog command per call against a [adapter.CatalogAdapter].
type App struct {
	adapter adapter.CatalogAdapter
	out     io.Writer
	logger  *logger.Logger

	commands map[string]command
}

func NewApp(catalog adapter.CatalogAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{adapter: catalog, out: out, logger: logger}
	a.commands = map[string]command{
		"list":    a.list,
		"create":  a.create,
		"version": a.version,
		"health":  a.health,
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Strs("args", rest).Msg("running command")
	return cmd(ctx, rest)
}

// Usage prints the command summary.
func (a *App) Usage() {
	fmt.Fprintln(a.out, helpStyle.Render(usage))
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("%w: list takes at most 2 arguments", ErrInvalidArgs)
	}

	var page, perPage int64
	var err error
	if len(args) > 0 {
		if page, err = parsePositive("page", args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		if perPage, err = parsePositive("per_page", args[1]); err != nil {
			return err
		}
	}

	result, err := a.adapter.ListProducts(ctx, page, perPage)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	renderPage(a.out, result)
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: create takes <name> <inventory>", ErrInvalidArgs)
	}

	name := strings.TrimSpace(args[0])
	inventory, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: inventory must be an integer", ErrInvalidArgs)
	}

	created, err := a.adapter.CreateProduct(ctx, models.ProductInput{
		Name:      &name,
		Inventory: &inventory,
	})
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	renderProduct(a.out, created)
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: version takes no arguments", ErrInvalidArgs)
	}

	v, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) health(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: health takes no arguments", ErrInvalidArgs)
	}

	if err := a.adapter.Health(ctx); err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	fmt.Fprintln(a.out, "ok")
	return nil
}

func parsePositive(name, raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidArgs, name)
	}
	return n, nil
}
