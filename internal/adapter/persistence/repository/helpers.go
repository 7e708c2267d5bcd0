package repository

import (
	"errors"
	"os"
	"strconv"
	"time"

	"informatica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Numbers are persisted as strings so records round-trip without float
// representation surprises; parsing tolerates absent fields as zero.

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func tenantKey(empresaID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"empresa_id": &types.AttributeValueMemberS{Value: empresaID},
		"id":         &types.AttributeValueMemberS{Value: id},
	}
}

// mapTransactError translates a cancelled write transaction into the
// repository-level signal. Every member condition asserts both existence and
// the previously observed value, so a cancellation is reported as a lost
// condition; the caller re-reads and discovers a genuinely missing record on
// the retry.
func mapTransactError(err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return interfaces.ErrConditionFailed
			}
		}
		return interfaces.ErrConditionFailed
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionFailed
	}
	return err
}
