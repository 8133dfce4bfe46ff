package bucket

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/jsphweid/midisynth/constants"
	"github.com/pkg/errors"
)

const scheme = "s3://"

// Location is an object in an S3 bucket.
type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	return scheme + l.Bucket + "/" + l.Key
}

// IsURL reports whether s names an S3 object rather than a local path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, scheme)
}

// ParseURL parses s3://bucket/key. Both parts are required and the key
// must not name a directory.
func ParseURL(s string) (Location, error) {
	if !IsURL(s) {
		return Location{}, errors.Errorf("Invalid S3 URL %s: expected %sbucket/key", s, scheme)
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(s, scheme), "/")
	if !found || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, errors.Errorf("Invalid S3 URL %s: expected %sbucket/key", s, scheme)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

func newSession() (*session.Session, error) {
	cfg := &aws.Config{
		Region: aws.String(constants.GetAWSRegion()),
	}
	if endpoint := constants.GetS3Endpoint(); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	return session.NewSession(cfg)
}

func Upload(ctx context.Context, loc Location, body io.Reader, contentType string) error {
	sess, err := newSession()
	if err != nil {
		return errors.Wrap(err, "Could not create an AWS session")
	}

	uploader := s3manager.NewUploader(sess)
	_, err = uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(loc.Bucket),
		Key:         aws.String(loc.Key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errors.Wrapf(err, "Uploading %s failed", loc)
	}
	return nil
}
