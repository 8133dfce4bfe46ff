package constants

import "os"

func GetListenAddr() string {
	addr := os.Getenv("MIDISYNTH_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetS3Endpoint returns an endpoint override for S3 uploads, e.g. a local
// minio. Empty means the AWS default for the region.
func GetS3Endpoint() string {
	return os.Getenv("MIDISYNTH_S3_ENDPOINT")
}

func GetAWSRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

const SampleRate = 44100

const Channels = 2

// silence rendered after the end of every track so release tails ring out
const PaddingMicros = 1_500_000

// microseconds per quarter note until the first tempo event
const DefaultTempo = 500_000

const MicrosPerSecond = 1_000_000

// largest accepted upload for the render endpoint
const MaxUploadSize = 32 * 1024 * 1024
