package initializers

import (
	"context"

	"helpdesk-backend/config"
	filestorage "helpdesk-backend/lib/file-storage"
	s3client "helpdesk-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.AccessKeyID == "" {
		filestorage.NewMemoryHandler()
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Fatal("Ошибка инициализации клиента S3")
	}

	// Проверка соединения и бакета
	if err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Fatal("Ошибка подготовки бакета S3")
	}

	s3client.Client = minioClient
	filestorage.NewHandler(minioClient, config.Conf.S3.BucketName)
	log.WithField("bucket", config.Conf.S3.BucketName).Info("S3 клиент успешно инициализирован")
}
