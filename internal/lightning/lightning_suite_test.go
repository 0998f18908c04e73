package lightning

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLightning(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Lightning Suite")
}
