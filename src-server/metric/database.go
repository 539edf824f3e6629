package metric

import (
	"context"
	"errors"
	"time"

	"huddle/src-server/model"
	"huddle/src-server/utils"
)

// database times a lookup that is expected to find nothing.
func database(as *utils.AppState) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	if _, err := as.Store.GetGroup(ctx, 0); err != nil && !errors.Is(err, model.ErrNotFound) {
		return 0, err
	}
	return time.Since(start), nil
}
