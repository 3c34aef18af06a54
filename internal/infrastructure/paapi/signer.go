package paapi

import (
	"bytes"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
)

const signingService = "ProductAdvertisingAPI"

// signer adds AWS Signature Version 4 headers to PA-API requests
type signer struct {
	v4     *v4.Signer
	region string
	now    func() time.Time
}

func newSigner(accessKey, secretKey, region string) *signer {
	return &signer{
		v4:     v4.NewSigner(credentials.NewStaticCredentials(accessKey, secretKey, "")),
		region: region,
		now:    time.Now,
	}
}

// sign sets X-Amz-Date and Authorization on req. payload must be the exact
// request body; the body of req is replaced with a reader over it.
func (s *signer) sign(req *http.Request, payload []byte) error {
	_, err := s.v4.Sign(req, bytes.NewReader(payload), signingService, s.region, s.now())
	return err
}
