package environment_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/sportdeets/load-tests/internal/environment"
)

var _ = Describe("FileResolver", func() {
	var (
		fs       afero.Fs
		resolver *environment.FileResolver
	)

	writeFile := func(name, content string) {
		Expect(afero.WriteFile(fs, "environments/"+name, []byte(content), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		Expect(fs.MkdirAll("environments", 0755)).To(Succeed())
		resolver = environment.NewFileResolver(fs, "environments")

		writeFile("dev.json", `{"baseUrl": "https://api-dev.sportdeets.com", "description": "Development environment"}`)
		writeFile("prod-internal.json", `{"baseUrl": "https://api-int.sportdeets.com", "description": "Production cluster - internal"}`)
		writeFile("README.md", `not an environment`)
	})

	It("should resolve an environment file", func() {
		cfg, err := resolver.Resolve("dev")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(environment.Config{
			BaseURL:     "https://api-dev.sportdeets.com",
			Description: "Development environment",
		}))
	})

	It("should list only json files, sorted", func() {
		Expect(resolver.Names()).To(Equal([]string{"dev", "prod-internal"}))
	})

	It("should fail with the available names for a missing file", func() {
		_, err := resolver.Resolve("prod-external")
		Expect(errors.Is(err, environment.ErrConfigNotFound)).To(BeTrue())
		Expect(err.Error()).To(Equal("unknown environment: prod-external. Available: dev, prod-internal"))
	})

	It("should not escape the directory", func() {
		writeFile("../secret.json", `{"baseUrl": "https://evil.example.com", "description": "x"}`)

		_, err := resolver.Resolve("../secret")
		Expect(err).To(MatchError(environment.ErrConfigNotFound))
	})

	It("should report malformed JSON as a decode error", func() {
		writeFile("broken.json", `{"baseUrl": `)

		_, err := resolver.Resolve("broken")
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, environment.ErrConfigNotFound)).To(BeFalse())
		Expect(err.Error()).To(ContainSubstring("decoding environment broken"))
	})

	It("should reject a file without a base URL", func() {
		writeFile("empty.json", `{"description": "nothing here"}`)

		_, err := resolver.Resolve("empty")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("invalid environment empty"))
	})

	It("should return no names when the directory is missing", func() {
		missing := environment.NewFileResolver(afero.NewMemMapFs(), "nowhere")
		Expect(missing.Names()).To(BeEmpty())

		_, err := missing.Resolve("dev")
		Expect(err).To(MatchError(environment.ErrConfigNotFound))
	})
})

var _ = Describe("New", func() {
	It("should build the inline resolver by default", func() {
		r, err := environment.New("", afero.NewMemMapFs(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(BeAssignableToTypeOf(&environment.InlineResolver{}))
	})

	It("should build the file resolver", func() {
		r, err := environment.New(environment.ModeFile, afero.NewMemMapFs(), "environments")
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(BeAssignableToTypeOf(&environment.FileResolver{}))
	})

	It("should reject unknown modes", func() {
		_, err := environment.New("consul", afero.NewMemMapFs(), "")
		Expect(err).To(HaveOccurred())
	})
})
