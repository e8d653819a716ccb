package service_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"helloteam.app/api/core/config"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
	"helloteam.app/api/internal/tenant"
)

var _ = Describe("Renditions", func() {
	cfg := config.MediaConfig{
		ImageHandlerURL: "https://img.example.com/",
		Bucket:          "helloteam-media",
		BaseURL:         "https://cdn.example.com",
		Thumb:           config.Size{Width: 150, Height: 150},
		Landscape:       config.Size{Width: 1200, Height: 675},
		Portrait:        config.Size{Width: 675, Height: 1200},
		Square:          config.Size{Width: 1080, Height: 1080},
	}

	decode := func(url string) map[string]any {
		encoded := strings.TrimPrefix(url, "https://img.example.com/")
		raw, err := base64.StdEncoding.DecodeString(encoded)
		Expect(err).NotTo(HaveOccurred())
		var out map[string]any
		Expect(json.Unmarshal(raw, &out)).To(Succeed())
		return out
	}

	It("encodes bucket, key and resize box", func() {
		r := service.NewRenditions(cfg).ForImage(&model.Image{FileKey: "team.png"})

		req := decode(r.Thumb)
		Expect(req["bucket"]).To(Equal("helloteam-media"))
		Expect(req["key"]).To(Equal("media/team.png"))
		Expect(req["edits"]).To(Equal(map[string]any{
			"resize": map[string]any{"width": float64(150), "height": float64(150), "fit": "cover"},
		}))

		Expect(decode(r.Portrait)["edits"]).To(HaveKeyWithValue("resize", HaveKeyWithValue("height", float64(1200))))
	})

	It("returns empty URLs without an image handler", func() {
		r := service.NewRenditions(config.MediaConfig{}).ForImage(&model.Image{FileKey: "team.png"})

		Expect(r).To(Equal(service.ImageRenditions{}))
	})

	It("builds video URLs under the media base", func() {
		url := service.NewRenditions(cfg).VideoURL(&model.Video{FileKey: "clip.mp4"})

		Expect(url).To(Equal("https://cdn.example.com/media/clip.mp4"))
	})
})

var _ = Describe("MediaService", func() {
	var (
		ctx    context.Context
		images *mockImageStore
		svc    service.MediaService
		rc     auth.RequestContext
	)

	BeforeEach(func() {
		ctx = context.Background()
		images = &mockImageStore{}
		rc = auth.RequestContext{User: &model.User{ID: 1, IsStaff: true}, WorkspaceID: auth.SomeID(10)}
		members := &mockWorkspaceStore{isMemberFn: func(_ context.Context, wsID, _ int64) (bool, error) {
			return wsID == 10, nil
		}}
		svc = service.NewMediaService(images, &mockVideoStore{}, tenant.NewGate(members))
	})

	It("registers an image in the ambient workspace", func() {
		img, err := svc.CreateImage(ctx, rc, tenant.Workspace(10), service.CreateImageInput{FileKey: "media/Team.JPG", SizeInBytes: 2048})

		Expect(err).NotTo(HaveOccurred())
		Expect(img.WorkspaceID).To(Equal(int64(10)))
		Expect(img.FileKey).To(Equal("Team.JPG"))
		Expect(images.createdWith).To(Equal(img))
	})

	It("rejects unsupported extensions", func() {
		_, err := svc.CreateImage(ctx, rc, tenant.Workspace(10), service.CreateImageInput{FileKey: "script.svg"})

		Expect(err).To(MatchError(service.ErrImageExtension))
		Expect(images.createdWith).To(BeNil())
	})

	It("hides images from other workspaces", func() {
		images.images = []model.Image{{ID: 1, WorkspaceID: 20, FileKey: "x.png"}}

		_, err := svc.GetImage(ctx, tenant.Workspace(10), 1)

		Expect(err).To(MatchError(service.ErrImageNotFound))
	})
})

var _ = Describe("LeadService", func() {
	It("normalizes the email and defaults the interaction", func() {
		leads := &mockLeadStore{}
		svc := service.NewLeadService(leads)

		lead, err := svc.Capture(context.Background(), " Fan@Example.com ", "")

		Expect(err).NotTo(HaveOccurred())
		Expect(lead.Email).To(Equal("fan@example.com"))
		Expect(lead.LastInteraction).To(Equal(model.DefaultLeadInteraction))
		Expect(leads.upserted).To(HaveLen(1))
	})

	It("rejects an invalid email", func() {
		_, err := service.NewLeadService(&mockLeadStore{}).Capture(context.Background(), "nope", "step-2")

		Expect(err).To(HaveOccurred())
	})
})
