package repository

import (
	"errors"
	"fmt"

	"terranova_lotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// translateDynamoWriteError maps a failed conditional put onto the shared
// duplicate-key sentinel so usecases handle both backends uniformly.
func translateDynamoWriteError(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: %v", interfaces.ErrDuplicateKey, err)
	}
	return err
}
