// Package rtdb stores drops in a Firebase realtime database node, using the
// record layout existing map clients read and write.
package rtdb

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"zumap/internal/domain/entity"
	"zumap/internal/domain/repository"
	"zumap/internal/errors"

	"firebase.google.com/go/v4/db"
)

// node is the subset of *db.Ref operations the repository needs.
type node interface {
	Get(ctx context.Context, v any) error
	Set(ctx context.Context, v any) error
	Delete(ctx context.Context) error
}

// tree resolves the drops node and its children.
type tree interface {
	Root() node
	Child(key string) node
}

type refTree struct {
	ref *db.Ref
}

func (t refTree) Root() node { return t.ref }

func (t refTree) Child(key string) node { return t.ref.Child(key) }

type dropRepository struct {
	tree   tree
	logger *slog.Logger
}

// NewDropRepository creates a drop repository over the given database path.
func NewDropRepository(client *db.Client, path string, logger *slog.Logger) repository.DropRepository {
	return newDropRepository(refTree{ref: client.NewRef(path)}, logger)
}

func newDropRepository(t tree, logger *slog.Logger) *dropRepository {
	return &dropRepository{tree: t, logger: logger}
}

// CreateDrop implements repository.DropRepository.
func (r *dropRepository) CreateDrop(ctx context.Context, drop *entity.Drop) error {
	if drop.ID == "" || strings.ContainsAny(drop.ID, ".$#[]/") {
		return errors.Errorf("invalid drop key %q", drop.ID)
	}

	child := r.tree.Child(drop.ID)

	var existing json.RawMessage
	if err := child.Get(ctx, &existing); err != nil {
		return errors.Wrap(err, "failed to check drop")
	}
	if len(existing) > 0 && string(existing) != "null" {
		return repository.ErrDuplicateDrop
	}

	if err := child.Set(ctx, toRecord(drop)); err != nil {
		return errors.Wrap(err, "failed to write drop")
	}

	return nil
}

// FindDropByID implements repository.DropRepository.
func (r *dropRepository) FindDropByID(ctx context.Context, id string) (*entity.Drop, error) {
	if id == "" || strings.ContainsAny(id, ".$#[]/") {
		return nil, repository.ErrDropNotFound
	}

	var raw json.RawMessage
	if err := r.tree.Child(id).Get(ctx, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to read drop")
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, repository.ErrDropNotFound
	}

	drop, ok := decodeDrop(id, raw)
	if !ok {
		r.logger.WarnContext(ctx, "Skipping malformed drop record", slog.String("drop_id", id))

		return nil, repository.ErrDropNotFound
	}

	return drop, nil
}

// ListDrops implements repository.DropRepository.
func (r *dropRepository) ListDrops(ctx context.Context) ([]*entity.Drop, error) {
	var raw map[string]json.RawMessage
	if err := r.tree.Root().Get(ctx, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to read drops")
	}

	drops := make([]*entity.Drop, 0, len(raw))
	for key, value := range raw {
		drop, ok := decodeDrop(key, value)
		if !ok {
			r.logger.WarnContext(ctx, "Skipping malformed drop record", slog.String("drop_id", key))

			continue
		}
		drops = append(drops, drop)
	}

	slices.SortStableFunc(drops, func(a, b *entity.Drop) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	return drops, nil
}

// DeleteAllDrops implements repository.DropRepository.
func (r *dropRepository) DeleteAllDrops(ctx context.Context) (int64, error) {
	var raw map[string]json.RawMessage
	if err := r.tree.Root().Get(ctx, &raw); err != nil {
		return 0, errors.Wrap(err, "failed to read drops")
	}

	if err := r.tree.Root().Delete(ctx); err != nil {
		return 0, errors.Wrap(err, "failed to delete drops")
	}

	return int64(len(raw)), nil
}
