package adapters

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// AWS Signature Version 4 for S3-compatible stores. The store verifies the
// signature byte-for-byte, so the canonical request layout below (newline
// placement included) must not change.

const (
	signingAlgorithm = "AWS4-HMAC-SHA256"
	signingRegion    = "auto"
	signingService   = "s3"

	amzDateFormat   = "20060102T150405Z"
	dateStampFormat = "20060102"
)

type signedHeaders struct {
	AmzDate       string
	PayloadHash   string
	Authorization string
}

func hmacSHA256(key []byte, message string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

func hexSHA256(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// deriveSigningKey chains HMAC-SHA256 over date, region, service, and the
// terminator, starting from "AWS4" + secret.
func deriveSigningKey(secretAccessKey, dateStamp, region, service string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secretAccessKey), dateStamp)
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, service)
	return hmacSHA256(kService, "aws4_request")
}

// signPutRequest computes the headers to authenticate a PUT of payload to
// https://{host}/{key}. Deterministic for a fixed clock.
func signPutRequest(host, key, accessKeyID, secretAccessKey string, payload []byte, now time.Time) signedHeaders {
	amzDate := now.UTC().Format(amzDateFormat)
	dateStamp := now.UTC().Format(dateStampFormat)

	payloadHash := hexSHA256(payload)

	canonicalURI := "/" + key
	canonicalQuerystring := ""
	canonicalHeaders := fmt.Sprintf("host:%s\nx-amz-content-sha256:%s\nx-amz-date:%s\n", host, payloadHash, amzDate)
	signedHeaderList := "host;x-amz-content-sha256;x-amz-date"

	canonicalRequest := strings.Join([]string{
		"PUT",
		canonicalURI,
		canonicalQuerystring,
		canonicalHeaders,
		signedHeaderList,
		payloadHash,
	}, "\n")

	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, signingRegion, signingService)
	stringToSign := strings.Join([]string{
		signingAlgorithm,
		amzDate,
		credentialScope,
		hexSHA256([]byte(canonicalRequest)),
	}, "\n")

	signingKey := deriveSigningKey(secretAccessKey, dateStamp, signingRegion, signingService)
	signature := hex.EncodeToString(hmacSHA256(signingKey, stringToSign))

	authorization := fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		signingAlgorithm, accessKeyID, credentialScope, signedHeaderList, signature)

	return signedHeaders{
		AmzDate:       amzDate,
		PayloadHash:   payloadHash,
		Authorization: authorization,
	}
}
