package handler

import (
	"context"
	"encoding/json"
	"strconv"
)

// fakeStore is an in-memory EntityStore for handler tests. Entities are kept
// as JSON maps so the generic merge-update behaves like the real store.
type fakeStore[T any] struct {
	docs    []map[string]any
	nextID  int
	findErr error
}

func toDoc[T any](entity *T) map[string]any {
	data, _ := json.Marshal(entity)
	var doc map[string]any
	_ = json.Unmarshal(data, &doc)
	return doc
}

func fromDoc[T any](doc map[string]any) (*T, error) {
	data, _ := json.Marshal(doc)
	item := new(T)
	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *fakeStore[T]) Insert(_ context.Context, entity *T) error {
	doc := toDoc(entity)
	s.nextID++
	doc["id"] = "id-" + strconv.Itoa(s.nextID)
	s.docs = append(s.docs, doc)
	decoded, err := fromDoc[T](doc)
	if err != nil {
		return err
	}
	*entity = *decoded
	return nil
}

func (s *fakeStore[T]) FindAll(_ context.Context) ([]T, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	items := []T{}
	for _, doc := range s.docs {
		item, err := fromDoc[T](doc)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *fakeStore[T]) FindByID(_ context.Context, id string) (*T, error) {
	for _, doc := range s.docs {
		if doc["id"] == id {
			return fromDoc[T](doc)
		}
	}
	return nil, nil
}

func (s *fakeStore[T]) UpdateByID(_ context.Context, id string, patch map[string]any) (*T, error) {
	for _, doc := range s.docs {
		if doc["id"] == id {
			for k, v := range patch {
				if k == "id" {
					continue
				}
				doc[k] = v
			}
			return fromDoc[T](doc)
		}
	}
	return nil, nil
}

func (s *fakeStore[T]) DeleteByID(_ context.Context, id string) (bool, error) {
	for i, doc := range s.docs {
		if doc["id"] == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore[T]) Count(_ context.Context) (int64, error) {
	return int64(len(s.docs)), nil
}
