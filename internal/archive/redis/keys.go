package redis

import (
	"fmt"

	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

const keyPrefix = "whoami"

func summaryKey(id model.GameID) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

func summaryIndexKey() string {
	return fmt.Sprintf("%s:summaries", keyPrefix)
}
