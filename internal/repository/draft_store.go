package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fairplay10x/internal/model"

	"github.com/redis/go-redis/v9"
)

// DraftKeyPrefix — шаблон ключа черновика жеребьёвки события.
const DraftKeyPrefix = "fairplay:draw:draft:%s"

// NewRedisClient создаёт клиента Redis (одиночный узел или кластер в зависимости от числа адресов)
// и проверяет соединение.
func NewRedisClient(ctx context.Context, addrs []string, password string) (redis.UniversalClient, error) {
	if len(addrs) == 0 {
		return nil, errors.New("no Redis addresses provided")
	}

	rdb := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        addrs,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis at %v: %w", addrs, err)
	}
	return rdb, nil
}

// DraftStore хранит неутверждённые результаты жеребьёвки в Redis с TTL.
type DraftStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewDraftStore создаёт хранилище черновиков.
func NewDraftStore(client redis.UniversalClient, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(eventID string) string {
	return fmt.Sprintf(DraftKeyPrefix, eventID)
}

// Get возвращает черновик события или ErrDraftNotFound.
func (s *DraftStore) Get(ctx context.Context, eventID string) (model.Draw, error) {
	data, err := s.client.Get(ctx, draftKey(eventID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Draw{}, ErrDraftNotFound
		}
		return model.Draw{}, fmt.Errorf("get draft: %w", err)
	}

	var d model.Draw
	if err := json.Unmarshal(data, &d); err != nil {
		return model.Draw{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}

// Save записывает черновик, увеличивая его версию. Если expectedVersion не совпадает
// с сохранённой версией (0 для отсутствующего черновика), возвращает ErrVersionConflict.
// Проверка и запись выполняются атомарно через WATCH/MULTI.
func (s *DraftStore) Save(ctx context.Context, d model.Draw, expectedVersion int64) (model.Draw, error) {
	key := draftKey(d.EventID)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		var current int64
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("read draft: %w", err)
		default:
			var stored model.Draw
			if err := json.Unmarshal(data, &stored); err != nil {
				return fmt.Errorf("decode draft: %w", err)
			}
			current = stored.Version
		}

		if expectedVersion != current {
			return ErrVersionConflict
		}

		d.Version = current + 1
		payload, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("encode draft: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return model.Draw{}, ErrVersionConflict
	}
	if err != nil {
		return model.Draw{}, err
	}
	return d, nil
}

// Delete удаляет черновик события.
func (s *DraftStore) Delete(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, draftKey(eventID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
