package repository

import (
	"errors"
	"testing"
	"time"

	"informatica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestFloatStringRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 4.5, 1500.10, 0.001} {
		if got := stringToFloat(floatToString(v)); got != v {
			t.Fatalf("round trip %v -> %v", v, got)
		}
	}
	if stringToFloat("") != 0 {
		t.Fatalf("absent field must parse as zero")
	}
}

func TestTimeStringRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	if got := stringToTime(timeToString(now)); !got.Equal(now) {
		t.Fatalf("round trip %v -> %v", now, got)
	}
	if timeToString(time.Time{}) != "" {
		t.Fatalf("zero time must serialize empty")
	}
	if !stringToTime("").IsZero() {
		t.Fatalf("empty string must parse as zero time")
	}
}

func TestTenantKey(t *testing.T) {
	key := tenantKey("emp-1", "ped-1")
	empresa, ok := key["empresa_id"].(*types.AttributeValueMemberS)
	if !ok || empresa.Value != "emp-1" {
		t.Fatalf("unexpected empresa_id: %+v", key)
	}
	id, ok := key["id"].(*types.AttributeValueMemberS)
	if !ok || id.Value != "ped-1" {
		t.Fatalf("unexpected id: %+v", key)
	}
}

func TestMapTransactError(t *testing.T) {
	t.Run("cancelled transaction with failed condition", func(t *testing.T) {
		err := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
		if got := mapTransactError(err); !errors.Is(got, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", got)
		}
	})

	t.Run("plain conditional failure", func(t *testing.T) {
		if got := mapTransactError(&types.ConditionalCheckFailedException{}); !errors.Is(got, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", got)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		sentinel := errors.New("throttled")
		if got := mapTransactError(sentinel); got != sentinel {
			t.Fatalf("expected passthrough, got %v", got)
		}
	})
}
