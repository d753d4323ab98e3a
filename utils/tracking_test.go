package utils_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"parlorspace/utils"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PS-\d{8}-[0-9A-F]{6}$`)
	for i := 0; i < 50; i++ {
		id := utils.GenerateTrackingID()
		assert.Regexp(t, pattern, id)
	}
}

func TestGenerateTrackingIDCarriesCurrentDate(t *testing.T) {
	id := utils.GenerateTrackingID()
	assert.True(t, strings.HasPrefix(id, "PS-"+time.Now().Format("20060102")+"-"))
}
