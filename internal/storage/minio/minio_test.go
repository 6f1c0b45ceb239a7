package minio

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-social-network/internal/config"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для изображений;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    UploadImage: загрузку с валидацией типа/размера и сбор публичного URL;
//    DeleteImage: best-effort удаление по публичному URL.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*ImagesStorage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "images"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:     endpoint,
			RootUser:     rootUser,
			RootPassword: rootPassword,
			Bucket:       bucket,
		},
		Image: config.ImageConfig{
			MaxSizeBytes:        1 << 20, // 1 MiB
			AllowedContentTypes: []string{"image/png", "image/jpeg", "image/webp"},
		},
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _ = startMinio(t, false)
}

func TestIntegration_UploadImage_OK(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	url, err := st.UploadImage(context.Background(), models.ImageFile{
		Bytes:       []byte{0x89, 0x50, 0x4E, 0x47, 0x0D},
		Filename:    "photo.PNG",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	require.Contains(t, url, "/images/publications/")
	require.True(t, strings.HasSuffix(url, ".png"), "расширение нормализуется к нижнему регистру: %s", url)
}

func TestIntegration_UploadImage_Validation(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	// Запрещённый тип содержимого.
	_, err := st.UploadImage(context.Background(), models.ImageFile{
		Bytes:       []byte{1, 2, 3},
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
	})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Пустой файл.
	_, err = st.UploadImage(context.Background(), models.ImageFile{
		Filename:    "empty.png",
		ContentType: "image/png",
	})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Превышение лимита размера.
	_, err = st.UploadImage(context.Background(), models.ImageFile{
		Bytes:       make([]byte, (1<<20)+1),
		Filename:    "big.png",
		ContentType: "image/png",
	})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_DeleteImage_BestEffort(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	url, err := st.UploadImage(context.Background(), models.ImageFile{
		Bytes:       []byte{0x89, 0x50, 0x4E, 0x47},
		Filename:    "photo.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)

	// Удаление существующего объекта и повторное удаление (no-op) не паникуют
	// и не возвращают ошибок — контракт best-effort.
	st.DeleteImage(context.Background(), url)
	st.DeleteImage(context.Background(), url)
	st.DeleteImage(context.Background(), "garbage-without-slashes")
}
