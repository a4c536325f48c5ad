package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"github.com/Ryan-Knowles/make-it-flat/mock"
	flatslog "github.com/Ryan-Knowles/make-it-flat/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("logs detected platform with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		strategy := &flat.Strategy{Platform: flat.PlatformDocusaurus}
		inner := &mock.StrategyRegistry{
			GetForHTMLFn: func(html string) *flat.Strategy {
				return strategy
			},
		}
		detector := &mock.PlatformDetector{
			DetectFn: func(html string) flat.Platform {
				return flat.PlatformDocusaurus
			},
		}

		registry := flatslog.NewLoggingRegistry(inner, detector, logger)
		got := registry.GetForHTML("<html>docusaurus</html>")

		assert.Equal(t, strategy, got)
		output := buf.String()
		assert.Contains(t, output, "platform detection")
		assert.Contains(t, output, "platform=docusaurus")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unknown platform", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StrategyRegistry{
			GetForHTMLFn: func(html string) *flat.Strategy {
				return &flat.Strategy{Platform: flat.PlatformGeneric}
			},
		}
		detector := &mock.PlatformDetector{
			DetectFn: func(html string) flat.Platform {
				return flat.PlatformUnknown
			},
		}

		registry := flatslog.NewLoggingRegistry(inner, detector, logger)
		registry.GetForHTML("<html>unknown</html>")

		output := buf.String()
		assert.Contains(t, output, "platform=(unknown)")
	})
}

func TestLoggingRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		strategy := &flat.Strategy{Platform: flat.PlatformSphinx}
		inner := &mock.StrategyRegistry{
			GetFn: func(platform flat.Platform) *flat.Strategy {
				return strategy
			},
		}

		registry := flatslog.NewLoggingRegistry(inner, nil, logger)
		got := registry.Get(flat.PlatformSphinx)

		assert.Equal(t, strategy, got)
	})
}

func TestLoggingRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var registeredPlatform flat.Platform
		var registeredStrategy *flat.Strategy
		strategy := &flat.Strategy{Platform: flat.PlatformMkDocs}
		inner := &mock.StrategyRegistry{
			RegisterFn: func(platform flat.Platform, s *flat.Strategy) {
				registeredPlatform = platform
				registeredStrategy = s
			},
		}

		registry := flatslog.NewLoggingRegistry(inner, nil, logger)
		registry.Register(flat.PlatformMkDocs, strategy)

		assert.Equal(t, flat.PlatformMkDocs, registeredPlatform)
		assert.Equal(t, strategy, registeredStrategy)
	})
}

func TestLoggingRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StrategyRegistry{
			ListFn: func() []flat.Platform {
				return []flat.Platform{flat.PlatformDocusaurus, flat.PlatformSphinx}
			},
		}

		registry := flatslog.NewLoggingRegistry(inner, nil, logger)
		platforms := registry.List()

		assert.Equal(t, []flat.Platform{flat.PlatformDocusaurus, flat.PlatformSphinx}, platforms)
	})
}
