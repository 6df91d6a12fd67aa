package handlers

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindJSON はボディを obj にバインドします。strict の場合、allowed に無いキーを
// 大文字小文字を区別して拒否します (encoding/json はキーを大文字小文字無視で照合するため)。
func bindJSON(c *gin.Context, obj any, strict bool, allowed ...string) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}

	if strict {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return err
		}
		var unknown []string
		for key := range fields {
			if !contains(allowed, key) {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return fmt.Errorf("unknown fields: %q", unknown)
		}
	}

	return binding.JSON.BindBody(body, obj)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
