// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/utils"
	"github.com/maxim-ist/mcp-bear/models"
)

// IDGenerator produces call identifiers for log correlation.
type IDGenerator interface {
	Generate() string
}

// Dispatcher validates a named request, routes it to exactly one executor
// and wraps the outcome in the response envelope. It holds no mutable state
// and is safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	ids      IDGenerator
	logger   *logger.Logger
}

func NewDispatcher(registry *Registry, ids IDGenerator, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		ids:      ids,
		logger:   logger,
	}
}

// Operations returns the catalog exposed to clients.
func (d *Dispatcher) Operations() []models.OperationDescriptor {
	return d.registry.Descriptors()
}

// Dispatch runs the named operation with the raw argument map. Every call
// returns exactly one envelope; errors and panics never escape.
//
// A call id already present in ctx (the HTTP trace id) is reused so that
// transport and operation logs share one identifier.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) (resp models.Response) {
	callID, ok := utils.GetCallIDFromContext(ctx)
	if !ok {
		callID = d.ids.Generate()
		ctx = utils.WithCallID(ctx, callID)
	}
	ctx, log := d.logger.WithCall(ctx, callID, name)

	defer func() {
		if p := recover(); p != nil {
			log.Error().
				Interface("panic", p).
				Str("stack", string(debug.Stack())).
				Msg("operation panicked")
			resp = models.NewFailureResponse(fmt.Errorf("%w: %v", ErrOperationPanicked, p))
		}
	}()

	op, ok := d.registry.lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownOperation, name)
		log.Warn().Err(err).Msg("rejected request")
		return models.NewFailureResponse(err)
	}

	if missing := missingArguments(op.desc, raw); len(missing) > 0 {
		err := fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
		log.Warn().Err(err).Msg("rejected request")
		return models.NewFailureResponse(err)
	}

	args, err := coerceArguments(op.desc, raw)
	if err != nil {
		log.Warn().Err(err).Msg("rejected request")
		return models.NewFailureResponse(err)
	}

	log.Debug().
		Strs("args", args.Names()).
		Str("executor", op.desc.Executor.String()).
		Msg("dispatching operation")

	result, err := op.run(ctx, args)
	if err != nil {
		log.Error().
			Err(err).
			Strs("args", args.Names()).
			Msg("operation failed")
		return models.NewFailureResponse(err)
	}

	log.Info().Msg("operation completed")
	return models.NewSuccessResponse(result)
}
