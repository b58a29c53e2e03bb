package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"book-catalog/internal/config"
	"book-catalog/internal/infrastructure/memory"

	"book-catalog/internal/domains/author"
	authorHandler "book-catalog/internal/domains/author/handler"
	authorService "book-catalog/internal/domains/author/service"
	"book-catalog/internal/domains/book"
	bookHandler "book-catalog/internal/domains/book/handler"
	bookService "book-catalog/internal/domains/book/service"
)

// Container holds the application's dependency graph.
// Lifecycle of every member: singleton, owned by whoever calls
// NewContainer (the API entry point).
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *memory.DB // In-memory catalog store, the only state

	// Repositories
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// Services
	AuthorService author.Service
	BookService   book.Service

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer initializes the whole dependency graph, in dependency
// order: config, store, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// The store is process memory; there is no connection to open and
	// nothing survives a restart.
	c.DB = memory.NewDB()

	c.AuthorRepo = c.DB.Authors()
	c.BookRepo = c.DB.Books()

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Info().Msg("Container initialized")
	return c, nil
}

// Cleanup releases container resources on shutdown. The in-memory store
// needs no teardown; this stays as the single shutdown hook.
func (c *Container) Cleanup() {
	log.Info().Msg("Container cleaned up")
}
