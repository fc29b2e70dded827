package filestorage

import (
	"context"
	"path"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// NewMemoryHandler хранилище в памяти процесса, используется когда S3 не настроен
func NewMemoryHandler() {
	log.Warn("S3 не настроен, файлы хранятся в памяти процесса")
	Instance = NewMemoryStorage()
}

func NewMemoryStorage() Provider {
	return &memoryImpl{
		objects: map[string][]byte{},
	}
}

type memoryImpl struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func (m *memoryImpl) Upload(ctx context.Context, folder, fileName, contentType string, body []byte) (string, error) {
	objectKey := path.Join(folder, uuid.NewString(), path.Base(fileName))
	data := make([]byte, len(body))
	copy(data, body)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectKey] = data
	return objectKey, nil
}

func (m *memoryImpl) Get(ctx context.Context, objectKey string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[objectKey]
	if !ok {
		return nil, errors.Errorf("файл %v не найден в хранилище", objectKey)
	}
	return data, nil
}

func (m *memoryImpl) Delete(ctx context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, objectKey)
	return nil
}
