package scene_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fluidscene/internal/scene"
)

func sampleScene() *scene.Scene {
	s := scene.New()
	s.Colormap = "Paired"
	s.Quiver = "b"
	s.Densities = append(s.Densities,
		scene.DefaultDensity(11, 26, 8, 8),
		scene.Density{PosX: 1, PosY: 2, SizeX: 3, SizeY: 4, Amount: -5},
	)
	s.Velocities = append(s.Velocities,
		scene.NewVelocity(5, 30, 2, 0, scene.Normal, 0),
		scene.NewVelocity(35, 30, -1, 0, scene.RotateCW, 15),
		scene.NewVelocity(20, 10, 0, 3, scene.RotateCCW, 90),
		scene.NewVelocity(8, 8, 1, 1, scene.ReturnX, 4),
		scene.NewVelocity(9, 9, 1, 1, scene.ReturnY, 2),
	)
	s.Solids = append(s.Solids,
		scene.Solid{PosX: 20, PosY: 25, SizeX: 4, SizeY: 4},
		scene.Solid{PosX: 26, PosY: 20, SizeX: 3, SizeY: 15},
	)
	return s
}

var _ = Describe("Codec", func() {
	It("parses a density-only scene", func() {
		s, err := scene.Unmarshal("density=1\n5, 5, 2, 2, 50\nvelocity=0\nsolid=0")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Densities).To(Equal([]scene.Density{{PosX: 5, PosY: 5, SizeX: 2, SizeY: 2, Amount: 50}}))
		Expect(s.Velocities).To(BeEmpty())
		Expect(s.Solids).To(BeEmpty())
	})

	It("round trips every field", func() {
		original := sampleScene()
		parsed, err := scene.Unmarshal(scene.Marshal(original))
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(original))
	})

	It("writes sections in order without a trailing newline", func() {
		s := scene.New()
		s.Densities = append(s.Densities, scene.DefaultDensity(11, 26, 8, 8))
		s.Velocities = append(s.Velocities, scene.NewVelocity(5, 30, 2, 0, scene.RotateCW, 10))
		s.Solids = append(s.Solids, scene.Solid{PosX: 20, PosY: 25, SizeX: 4, SizeY: 4})

		Expect(scene.Marshal(s)).To(Equal(strings.Join([]string{
			"colormap=None",
			"quiver=None",
			"density=1",
			"11, 26, 8, 8, 100",
			"velocity=1",
			"5, 30, 2, 0, 2, 10",
			"solid=1",
			"20, 25, 4, 4",
		}, "\n")))
	})

	It("maps None palette names to empty", func() {
		s, err := scene.Unmarshal("colormap=None\nquiver=None\ndensity=0\nvelocity=0")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Colormap).To(BeEmpty())
		Expect(s.Quiver).To(BeEmpty())
	})

	It("reads the older format without quiver and solid sections", func() {
		s, err := scene.Unmarshal("colormap=viridis\ndensity=1\n0, 0, 1, 1, 10\nvelocity=1\n3, 4, 1, 0, 3, 20")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Colormap).To(Equal("viridis"))
		Expect(s.Densities).To(HaveLen(1))
		Expect(s.Velocities).To(HaveLen(1))
		Expect(s.Velocities[0].Mode()).To(Equal(scene.RotateCCW))
		Expect(s.Velocities[0].Param()).To(Equal(20))
		Expect(s.Solids).To(BeEmpty())
	})

	It("ignores lines once the declared count is exhausted", func() {
		s, err := scene.Unmarshal("density=1\n1, 1, 1, 1, 1\nnot a record\n2, 2, 2, 2, 2\nsolid=1\n0, 0, 1, 1")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Densities).To(HaveLen(1))
		Expect(s.Solids).To(HaveLen(1))
	})

	It("accepts records without spaces after commas", func() {
		s, err := scene.Unmarshal("solid=1\n1,2,3,4")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Solids[0]).To(Equal(scene.Solid{PosX: 1, PosY: 2, SizeX: 3, SizeY: 4}))
	})

	Describe("header detection", func() {
		const input = "density=2\n1, 1, 1, 1, 10\n2, 2, 1, 1, 20 velocity=1\n0, 0, 1, 1, 1"

		It("treats any line containing a key as a header by default", func() {
			s, err := scene.Unmarshal(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Densities).To(HaveLen(1))
			Expect(s.Velocities).To(HaveLen(1))
			Expect(s.Velocities[0].String()).To(Equal("0, 0, 1, 1, 1"))
		})

		It("only matches key= prefixes in strict mode", func() {
			_, err := scene.Unmarshal(input, scene.WithStrictHeaders())
			Expect(err).To(MatchError(scene.ErrMalformedField))
		})

		It("parses well-formed files the same way in strict mode", func() {
			text := scene.Marshal(sampleScene())
			strict, err := scene.Unmarshal(text, scene.WithStrictHeaders())
			Expect(err).NotTo(HaveOccurred())
			Expect(strict).To(Equal(sampleScene()))
		})
	})

	Describe("errors", func() {
		It("rejects non-integer fields with line context", func() {
			s, err := scene.Unmarshal("density=1\n1, a, 1, 1, 1")
			Expect(s).To(BeNil())
			Expect(err).To(MatchError(scene.ErrMalformedField))

			var perr *scene.ParseError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Line).To(Equal(2))
		})

		It("rejects non-integer counts", func() {
			_, err := scene.Unmarshal("density=two")
			Expect(err).To(MatchError(scene.ErrMalformedField))
		})

		It("rejects headers without a value", func() {
			_, err := scene.Unmarshal("colormap")
			Expect(err).To(MatchError(scene.ErrMalformedHeader))
		})

		It("rejects animation ids out of range", func() {
			_, err := scene.Unmarshal("velocity=1\n0, 0, 1, 1, 9")
			Expect(err).To(MatchError(scene.ErrInvalidAnimation))
		})

		It("requires a parameter for animated modes", func() {
			_, err := scene.Unmarshal("velocity=1\n0, 0, 1, 1, 4")
			Expect(err).To(MatchError(scene.ErrMalformedRecord))
		})

		It("rejects short records", func() {
			_, err := scene.Unmarshal("solid=1\n0, 0, 1")
			Expect(err).To(MatchError(scene.ErrMalformedRecord))
		})
	})

	Describe("files", func() {
		var dir string

		BeforeEach(func() {
			dir = filepath.Join(GinkgoT().TempDir(), "Config")
		})

		It("saves and loads by name", func() {
			path, err := scene.Save(dir, "Config5", sampleScene())
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(dir, "Config5.txt")))

			s, err := scene.Load(dir, "Config5")
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(sampleScene()))
		})

		It("reports missing scenes", func() {
			_, err := scene.Load(dir, "missing")
			Expect(err).To(MatchError(scene.ErrSceneNotFound))
		})

		It("wraps parse failures with the path", func() {
			Expect(os.MkdirAll(dir, 0755)).To(Succeed())
			Expect(os.WriteFile(scene.Path(dir, "bad"), []byte("density=1\n1, 1, x, 1, 1"), 0644)).To(Succeed())
			_, err := scene.Load(dir, "bad")
			Expect(err).To(MatchError(ContainSubstring("bad.txt")))
			Expect(err).To(MatchError(scene.ErrMalformedField))
		})
	})

	It("clones with fresh injector phases", func() {
		s := sampleScene()
		for _, v := range s.Velocities {
			v.Step()
		}
		c := s.Clone()
		Expect(c).To(Equal(sampleScene()))
		Expect(c.Velocities[0]).NotTo(BeIdenticalTo(s.Velocities[0]))
	})
})
