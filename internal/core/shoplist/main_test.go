package shoplist

import (
	"os"
	"testing"

	"shoplist-generator/internal/pkg/common"
)

func TestMain(m *testing.M) {
	if err := common.InitLogger("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
