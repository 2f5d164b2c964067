package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type contextKey string

const decoratedKey contextKey = "preview.decorated"

type Server struct {
	options Options

	root string
	app  *fiber.App

	logger *slog.Logger

	mu     sync.Mutex
	stdout io.Writer
}

func New(options Options) (*Server, error) {
	options.setDefaults()

	if err := options.validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(options.Root)

	if err != nil {
		return nil, err
	}

	s := &Server{
		options: options,

		root:   root,
		logger: options.Logger,

		stdout: options.Stdout,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,

		ReadTimeout: options.ReadTimeout,
		IdleTimeout: options.IdleTimeout,

		ErrorHandler: s.handleError,
	})

	app.Use(s.decorate)
	app.Use(recover.New())

	app.Use(filesystem.New(filesystem.Config{
		Root: http.Dir(root),

		Browse: true,
		Index:  path.Join("/", options.Index),
	}))

	s.app = app

	return s, nil
}

func (s *Server) Root() string {
	return s.root
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.options.Host, strconv.Itoa(s.options.Port))
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := s.Addr()

	ln, err := net.Listen("tcp", addr)

	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. It owns ln and
// closes it on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	port := s.options.Port

	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}

	s.printf("Server running at http://%s/\n", net.JoinHostPort(s.options.Host, strconv.Itoa(port)))
	s.printf("Serving files from: %s\n", s.root)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return s.app.Listener(ln)
	})

	eg.Go(func() error {
		<-ctx.Done()

		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Warn("shutdown incomplete", "error", err)
		}

		// Serve may not have registered ln yet when shutdown races startup
		ln.Close()

		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	s.printf("\nServer stopped.\n")

	return nil
}

func (s *Server) decorate(c *fiber.Ctx) error {
	c.Locals(decoratedKey, true)

	if err := c.Next(); err != nil {
		if err := c.App().ErrorHandler(c, err); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	NoCache(c)

	s.write(AccessLog(c, s.options.Clock()))

	return nil
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error

	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	if err := fiber.DefaultErrorHandler(c, err); err != nil {
		return err
	}

	// requests rejected by the transport before routing never reach decorate
	if c.Locals(decoratedKey) == nil {
		NoCache(c)

		s.write(formatAccessLine(c.IP(), s.options.Clock(), "-", c.Response().StatusCode()))
	}

	return nil
}

func (s *Server) printf(format string, a ...any) {
	s.write(fmt.Sprintf(format, a...))
}

func (s *Server) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	io.WriteString(s.stdout, line)
}
