package registry_test

import (
	"github.com/danny0094/mcp-bridge-stack/registry"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseDocument", func() {
	It("accepts a document without servers", func() {
		doc, err := registry.ParseDocument([]byte(`{"autoReload": true}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.AutoReload).To(BeTrue())
		Expect(doc.Servers).To(BeEmpty())
	})

	It("ignores unknown fields", func() {
		doc, err := registry.ParseDocument([]byte(`{"servers": [{"id": "time", "url": "https://svc-time/", "name": "Time"}]}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Servers).To(HaveLen(1))
		Expect(doc.Servers[0].IsEnabled()).To(BeTrue())
	})

	It("rejects a url that is not http", func() {
		_, err := registry.ParseDocument([]byte(`{"servers": [{"id": "time", "url": "ftp://svc-time/"}]}`))
		Expect(err).To(MatchError(ContainSubstring("validate")))
	})

	It("rejects an id containing a slash", func() {
		_, err := registry.ParseDocument([]byte(`{"servers": [{"id": "a/b", "url": "http://svc/"}]}`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-boolean enabled flag", func() {
		_, err := registry.ParseDocument([]byte(`{"servers": [{"id": "time", "url": "http://svc/", "enabled": "yes"}]}`))
		Expect(err).To(HaveOccurred())
	})
})
