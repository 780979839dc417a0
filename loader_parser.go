package formbs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	internalLoader "github.com/goliatone/go-formbs/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formbs/internal/openapi/parser"
	"github.com/goliatone/go-formbs/pkg/element"
	pkgopenapi "github.com/goliatone/go-formbs/pkg/openapi"
)

// ErrUnknownOperation is returned when an operation id is not in the document.
var ErrUnknownOperation = errors.New("formbs: unknown operation")

// NewLoader constructs a loader backed by the internal implementation.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser constructs a kin-openapi backed parser.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalParser.New(pkgopenapi.NewParserOptions(options...))
}

// Operations parses doc and returns its operations sorted by id.
func Operations(ctx context.Context, doc pkgopenapi.Document, options ...pkgopenapi.ParserOption) ([]pkgopenapi.Operation, error) {
	operations, err := NewParser(options...).Operations(ctx, doc)
	if err != nil {
		return nil, err
	}
	out := make([]pkgopenapi.Operation, 0, len(operations))
	for _, op := range operations {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadForm builds the form for operationID from doc.
func LoadForm(ctx context.Context, doc pkgopenapi.Document, operationID string, options ...pkgopenapi.ParserOption) (element.Form, error) {
	operations, err := NewParser(options...).Operations(ctx, doc)
	if err != nil {
		return element.Form{}, err
	}
	op, ok := operations[operationID]
	if !ok {
		return element.Form{}, fmt.Errorf("%w: %q", ErrUnknownOperation, operationID)
	}
	return pkgopenapi.FormFromOperation(op), nil
}
