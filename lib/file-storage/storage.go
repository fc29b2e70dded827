package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, folder, fileName, contentType string, body []byte) (objectKey string, err error)
	Get(ctx context.Context, objectKey string) ([]byte, error)
	Delete(ctx context.Context, objectKey string) error
}

var Instance Provider

func NewHandler(s3client *minio.Client, bucketName string) {
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) Upload(ctx context.Context, folder, fileName, contentType string, body []byte) (objectKey string, err error) {
	if i.s3client == nil {
		return "", errors.New("файловое хранилище не инициализировано")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey = path.Join(folder, uuid.NewString(), path.Base(fileName))
	_, err = i.s3client.PutObject(ctx, i.bucketName, objectKey, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	log.
		WithField("object_key", objectKey).
		WithField("size", len(body)).
		Info("файл загружен в хранилище")
	return objectKey, nil
}

func (i impl) Get(ctx context.Context, objectKey string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("файловое хранилище не инициализировано")
	}
	obj, err := i.s3client.GetObject(ctx, i.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return body, nil
}

func (i impl) Delete(ctx context.Context, objectKey string) error {
	if i.s3client == nil {
		return errors.New("файловое хранилище не инициализировано")
	}
	err := i.s3client.RemoveObject(ctx, i.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("ошибка удаления файла %v из хранилища", objectKey))
	}
	return nil
}
