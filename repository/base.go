/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import (
	"context"

	"github.com/uptrace/bun"
)

type baseRepositoryImpl[T any] struct {
	db bun.IDB
}

// NewRepository returns a generic repository bound to db, which is normally
// the handle of one session.
func NewRepository[T any](db bun.IDB) CrudRepository[T] {
	return newBaseRepository[T](db)
}

func newBaseRepository[T any](db bun.IDB) *baseRepositoryImpl[T] {
	return &baseRepositoryImpl[T]{db: db}
}

func (r *baseRepositoryImpl[T]) GetOne(ctx context.Context, id any) (*T, error) {
	var entity T
	err := r.db.NewSelect().Model(&entity).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return nil, translateError("select one", err)
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) GetAll(ctx context.Context) ([]*T, error) {
	entities := make([]*T, 0)
	err := r.db.NewSelect().Model(&entities).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, translateError("select all", err)
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) Create(ctx context.Context, entity *T) (int64, error) {
	res, err := r.db.NewInsert().Model(entity).Exec(ctx)
	if err != nil {
		return 0, translateError("insert", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translateError("insert", err)
	}
	return n, nil
}
