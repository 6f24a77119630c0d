package storage

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"blogserver/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	s3Client *s3.S3
	bucket   string
}

func NewS3Storage() *S3Storage {
	awsConfig := aws.Config{
		Region:      aws.String(config.S3_REGION),
		Credentials: credentials.NewStaticCredentials(config.S3_ACCESS_KEY, config.S3_SECRET_KEY, ""),
	}
	if config.S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	return &S3Storage{
		s3Client: s3.New(session.Must(session.NewSession(&awsConfig))),
		bucket:   config.S3_BUCKET,
	}
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      &s.bucket,
		Key:         aws.String(path),
		ContentType: &mimeType,
		Body:        reader,
	})
	// The uploader doesn't report the size; callers only check the error
	return 0, err
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		http.NotFound(writer, request)
		return
	}
	defer resp.Body.Close()
	if resp.ContentType != nil {
		writer.Header().Set("Content-Type", *resp.ContentType)
	}
	_, _ = io.Copy(writer, resp.Body)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	return err
}

func (s *S3Storage) GetFreeSpace() uint64 {
	// S3 has no meaningful capacity limit
	return ^uint64(0)
}
