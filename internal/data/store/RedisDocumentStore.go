package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/data/redisStore"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

const (
	workspaceKeyPrefix = "workspace:"
	docIndexKeyPrefix  = "docs:"
	docKeyPrefix       = "doc:"
	blobKeyPrefix      = "blob:"
)

type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDocumentStore(ctx context.Context, opts redisStore.Options) *RedisDocumentStore {
	s := redisStore.GetRedisStore(ctx, opts, config.RedisDocumentStore)
	if s == nil {
		return nil
	}
	return NewRedisDocumentStore(s)
}

func NewRedisDocumentStore(s *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  s,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func docKey(workspaceId string, id string) string {
	return docKeyPrefix + workspaceId + ":" + id
}

func (s *RedisDocumentStore) CreateWorkspace(ctx context.Context, workspaceId string) error {
	return s.store.Set(ctx, workspaceKeyPrefix+workspaceId, "1", config.RedisDocumentStoreTTL)
}

func (s *RedisDocumentStore) WorkspaceExists(ctx context.Context, workspaceId string) bool {
	found, err := s.store.Exists(ctx, workspaceKeyPrefix+workspaceId)
	if err != nil {
		s.logger.Trace(ctx).Error("Failed to check workspace", "workspaceId", workspaceId, "error", err)
		return false
	}
	return found
}

func (s *RedisDocumentStore) DeleteWorkspace(ctx context.Context, workspaceId string) error {
	ids, err := s.store.SetMembers(ctx, docIndexKeyPrefix+workspaceId)
	if err != nil {
		return fmt.Errorf("list workspace documents: %w", err)
	}
	keys := []string{workspaceKeyPrefix + workspaceId, docIndexKeyPrefix + workspaceId}
	for _, id := range ids {
		keys = append(keys, docKey(workspaceId, id))
	}
	return s.store.Del(ctx, keys...)
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc documentModel.UploadedDocument) error {
	return s.writeDocument(ctx, doc, workspaceKeyPrefix+doc.WorkspaceId)
}

func (s *RedisDocumentStore) UpdateDocument(ctx context.Context, doc documentModel.UploadedDocument) error {
	return s.writeDocument(ctx, doc, workspaceKeyPrefix+doc.WorkspaceId, docKey(doc.WorkspaceId, doc.Id))
}

// writeDocument stores the record only while every guard key exists.
func (s *RedisDocumentStore) writeDocument(ctx context.Context, doc documentModel.UploadedDocument, guards ...string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	for attempt := 1; attempt <= config.DocumentStoreMaxTxRetries; attempt++ {
		written, err := s.store.SetIndexedIfExists(ctx, docKey(doc.WorkspaceId, doc.Id), data, config.RedisDocumentStoreTTL,
			docIndexKeyPrefix+doc.WorkspaceId, doc.Id, guards...)
		if errors.Is(err, redisStore.ErrConflict) {
			s.logger.Trace(ctx).Warn("workspace changed during save, retrying", "documentId", doc.Id, "attempt", attempt)
			continue
		}
		if err != nil {
			return fmt.Errorf("save document: %w", err)
		}
		if !written {
			return documentModel.ErrNotFound
		}
		return nil
	}
	return fmt.Errorf("save document: %w", redisStore.ErrConflict)
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, workspaceId string, id string) (documentModel.UploadedDocument, error) {
	var doc documentModel.UploadedDocument
	val, err := s.store.Get(ctx, docKey(workspaceId, id))
	if s.store.IsNil(err) {
		return doc, documentModel.ErrNotFound
	} else if err != nil {
		return doc, fmt.Errorf("read document: %w", err)
	}
	if err = json.Unmarshal([]byte(val), &doc); err != nil {
		return doc, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func (s *RedisDocumentStore) ListDocuments(ctx context.Context, workspaceId string) ([]documentModel.UploadedDocument, error) {
	ids, err := s.store.SetMembers(ctx, docIndexKeyPrefix+workspaceId)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	docs := make([]documentModel.UploadedDocument, 0, len(ids))
	for _, id := range ids {
		doc, err := s.GetDocument(ctx, workspaceId, id)
		if err != nil {
			//index can outlive an expired record
			s.logger.Trace(ctx).Debug("skipping document", "documentId", id, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	sortByCreation(docs)
	return docs, nil
}

func (s *RedisDocumentStore) DeleteDocument(ctx context.Context, workspaceId string, id string) error {
	if err := s.store.Del(ctx, docKey(workspaceId, id)); err != nil {
		return err
	}
	return s.store.SetRemove(ctx, docIndexKeyPrefix+workspaceId, id)
}

func (s *RedisDocumentStore) SaveBlob(ctx context.Context, token string, blob documentModel.Blob) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshal blob: %w", err)
	}
	return s.store.Set(ctx, blobKeyPrefix+token, data, config.RedisDocumentStoreTTL)
}

func (s *RedisDocumentStore) GetBlob(ctx context.Context, token string) (documentModel.Blob, error) {
	var blob documentModel.Blob
	data, err := s.store.GetBytes(ctx, blobKeyPrefix+token)
	if s.store.IsNil(err) {
		return blob, documentModel.ErrNotFound
	} else if err != nil {
		return blob, fmt.Errorf("read blob: %w", err)
	}
	if err = json.Unmarshal(data, &blob); err != nil {
		return blob, fmt.Errorf("decode blob: %w", err)
	}
	return blob, nil
}

func (s *RedisDocumentStore) RevokeBlob(ctx context.Context, token string) error {
	return s.store.Del(ctx, blobKeyPrefix+token)
}

func sortByCreation(docs []documentModel.UploadedDocument) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
}
