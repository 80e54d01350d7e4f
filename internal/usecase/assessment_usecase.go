package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"claim_triage/internal/domain/assessment"
	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrAssessmentUnavailable = errors.New("assessment unavailable")
	ErrInvalidImage          = errors.New("invalid image")
)

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// AssessmentResult is the routed claim plus how each pipeline stage went.
type AssessmentResult struct {
	Claim       entities.Claim           `json:"claim"`
	Stages      []assessment.StageTiming `json:"stages"`
	Cached      bool                     `json:"cached"`
	ImageDigest string                   `json:"image_digest"`
}

// IAssessmentUseCase turns a vehicle photo into a routed claim.
type IAssessmentUseCase interface {
	Assess(ctx context.Context, image []byte, filename string) (AssessmentResult, error)
}

type AssessmentUseCase struct {
	vision   interfaces.IVisionAnalyzer
	language interfaces.ILanguageModel
	cache    interfaces.ICache
	claims   IClaimUseCase
	region   entities.RegionInfo
	cacheTTL time.Duration
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

// NewAssessmentUseCase wires the pipeline. cache may be nil.
func NewAssessmentUseCase(
	vision interfaces.IVisionAnalyzer,
	language interfaces.ILanguageModel,
	cache interfaces.ICache,
	claims IClaimUseCase,
	region entities.RegionInfo,
	cacheTTL time.Duration,
) *AssessmentUseCase {
	return &AssessmentUseCase{
		vision:   vision,
		language: language,
		cache:    cache,
		claims:   claims,
		region:   region,
		cacheTTL: cacheTTL,
	}
}

func (u *AssessmentUseCase) Assess(ctx context.Context, image []byte, filename string) (AssessmentResult, error) {
	var timings []assessment.StageTiming
	mark := func(name assessment.StageName, d time.Duration, skipped bool) {
		timings = append(timings, assessment.StageTiming{Name: name, Duration: d, Skipped: skipped})
	}

	start := time.Now()
	if len(image) == 0 {
		return AssessmentResult{}, fmt.Errorf("%w: empty upload", ErrInvalidImage)
	}
	mediaType := http.DetectContentType(image)
	if !supportedImageTypes[mediaType] {
		return AssessmentResult{}, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, mediaType)
	}
	sum := sha256.Sum256(image)
	digest := hex.EncodeToString(sum[:])
	mark(assessment.StageUpload, time.Since(start), false)
	log.Printf("[assessment][usecase] start file=%q size=%d type=%s digest=%s", filename, len(image), mediaType, digest[:12])

	in, cached := u.fromCache(ctx, digest)
	if cached {
		mark(assessment.StageVisionAnalysis, 0, true)
		mark(assessment.StageVehicleIdentification, 0, true)
		mark(assessment.StageCostEstimation, 0, true)
	} else {
		vision, lang, complete, err := u.analyze(ctx, image, mediaType, mark)
		if err != nil {
			return AssessmentResult{}, err
		}

		start = time.Now()
		in, err = assessment.Merge(vision, lang, u.region)
		if err != nil {
			return AssessmentResult{}, errors.Join(ErrAssessmentUnavailable, err)
		}
		mark(assessment.StageCostEstimation, time.Since(start), false)

		if complete {
			u.toCache(ctx, digest, in)
		}
	}

	start = time.Now()
	claim, err := u.claims.CreateClaim(ctx, in)
	if err != nil {
		return AssessmentResult{}, err
	}
	mark(assessment.StageRouting, time.Since(start), false)

	log.Printf("[assessment][usecase] done id=%s cached=%t review_type=%s", claim.ID, cached, claim.AIConfidence.ReviewType)
	return AssessmentResult{Claim: claim, Stages: timings, Cached: cached, ImageDigest: digest}, nil
}

// analyze runs both collaborators concurrently. One failure degrades to the other's
// result; complete is false in that case.
func (u *AssessmentUseCase) analyze(
	ctx context.Context,
	image []byte,
	mediaType string,
	mark func(assessment.StageName, time.Duration, bool),
) (*assessment.VisionResult, *assessment.LanguageResult, bool, error) {
	var (
		vision             assessment.VisionResult
		lang               assessment.LanguageResult
		visionErr, langErr error
		visionDur, langDur time.Duration
	)

	// Each collaborator keeps its own error so one can stand in for the other.
	// The group only joins the two calls; Wait never reports a failure.
	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		vision, visionErr = u.vision.AnalyzeImage(ctx, image, mediaType)
		visionDur = time.Since(start)
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		lang, langErr = u.language.DescribeDamage(ctx, image, mediaType)
		langDur = time.Since(start)
		return nil
	})
	_ = g.Wait()

	mark(assessment.StageVisionAnalysis, visionDur, visionErr != nil)
	mark(assessment.StageVehicleIdentification, langDur, langErr != nil)

	switch {
	case visionErr != nil && langErr != nil:
		log.Printf("[assessment][usecase] collaborators failed vision_err=%v language_err=%v", visionErr, langErr)
		return nil, nil, false, errors.Join(ErrAssessmentUnavailable, visionErr, langErr)
	case visionErr != nil:
		log.Printf("[assessment][usecase] vision failed, using language model only err=%v", visionErr)
		return nil, &lang, false, nil
	case langErr != nil:
		log.Printf("[assessment][usecase] language model failed, using vision only err=%v", langErr)
		return &vision, nil, false, nil
	}
	return &vision, &lang, true, nil
}

func cacheKey(digest string) string { return "assessment:" + digest }

func (u *AssessmentUseCase) fromCache(ctx context.Context, digest string) (entities.ClaimInput, bool) {
	if u.cache == nil {
		return entities.ClaimInput{}, false
	}
	raw, ok, err := u.cache.Get(ctx, cacheKey(digest))
	if err != nil || !ok {
		return entities.ClaimInput{}, false
	}
	var in entities.ClaimInput
	if err := json.Unmarshal(raw, &in); err != nil {
		log.Printf("[assessment][cache] corrupt entry digest=%s err=%v", digest[:12], err)
		return entities.ClaimInput{}, false
	}
	return in, true
}

func (u *AssessmentUseCase) toCache(ctx context.Context, digest string, in entities.ClaimInput) {
	if u.cache == nil {
		return
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, cacheKey(digest), raw, u.cacheTTL); err != nil {
		log.Printf("[assessment][cache] set failed digest=%s err=%v", digest[:12], err)
	}
}
