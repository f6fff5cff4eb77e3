// FILE: internal/service/summarizer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/entitlement"
	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/repository/specification"
	"ai-videosummary-be/internal/repository/unitofwork"
	"ai-videosummary-be/pkg/events"
	pktNats "ai-videosummary-be/pkg/nats"
	"ai-videosummary-be/pkg/summarizer"
	"ai-videosummary-be/pkg/videometa"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ISummarizerService runs the summary pipeline: validate the link, resolve
// metadata, gate on the daily quota, stream the generated text, then persist
// the artifact and record usage exactly once.
type ISummarizerService interface {
	ResolveVideo(ctx context.Context, req *dto.ResolveVideoRequest) (*dto.VideoMetadataDTO, error)
	// Summarize runs the full pipeline. onProgress, when non-nil, receives
	// each growing prefix of the summary text as the generator produces it.
	Summarize(ctx context.Context, req *dto.SummarizeRequest, onProgress func(partial string)) (*dto.SummarizeResponse, error)
	ListSummaries(ctx context.Context) ([]dto.SummaryDTO, error)
	DeleteSummary(ctx context.Context, id uuid.UUID) error
}

type summarizerService struct {
	session          ISessionService
	uowFactory       unitofwork.RepositoryFactory
	resolver         videometa.Resolver
	generator        summarizer.Generator
	recorder         *UsageRecorder
	metaCache        *cache.Cache
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewSummarizerService(
	session ISessionService,
	uowFactory unitofwork.RepositoryFactory,
	resolver videometa.Resolver,
	generator summarizer.Generator,
	recorder *UsageRecorder,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) ISummarizerService {
	return &summarizerService{
		session:          session,
		uowFactory:       uowFactory,
		resolver:         resolver,
		generator:        generator,
		recorder:         recorder,
		metaCache:        cache.New(30*time.Minute, 10*time.Minute),
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// ResolveVideo validates the link and fetches display metadata, so the
// client can show a preview card before committing a quota slot.
func (s *summarizerService) ResolveVideo(ctx context.Context, req *dto.ResolveVideoRequest) (*dto.VideoMetadataDTO, error) {
	if !videometa.ValidateURL(req.URL) {
		return nil, dto.ErrInvalidInput
	}
	videoId := videometa.ExtractVideoId(req.URL)
	if videoId == "" {
		return nil, dto.ErrInvalidInput
	}

	meta, err := s.resolveMetadata(ctx, videoId)
	if err != nil {
		return nil, err
	}
	return &dto.VideoMetadataDTO{
		VideoId:     meta.VideoId,
		Title:       meta.Title,
		Thumbnail:   meta.Thumbnail,
		Duration:    meta.Duration,
		ChannelName: meta.ChannelName,
		PublishedAt: meta.PublishedAt,
	}, nil
}

func (s *summarizerService) Summarize(ctx context.Context, req *dto.SummarizeRequest, onProgress func(partial string)) (*dto.SummarizeResponse, error) {
	user := s.session.Current()
	if user == nil {
		return nil, dto.ErrNotAuthenticated
	}

	if !videometa.ValidateURL(req.URL) {
		return nil, dto.ErrInvalidInput
	}
	videoId := videometa.ExtractVideoId(req.URL)
	if videoId == "" {
		return nil, dto.ErrInvalidInput
	}

	meta, err := s.resolveMetadata(ctx, videoId)
	if err != nil {
		return nil, err
	}

	// Entitlement is decided on the snapshot taken above. The same snapshot
	// feeds the usage increment at the end, so a run is charged against the
	// state it was admitted under.
	now := time.Now()
	if !entitlement.CanSummarize(user, now) {
		return nil, &dto.QuotaExceededError{
			Limit:    entitlement.DailyFreeLimit,
			Used:     entitlement.EffectiveDailyUsage(user, now),
			ResetsAt: entitlement.NextReset(now),
		}
	}

	stream, err := s.generator.Generate(ctx, summarizer.VideoContext{
		VideoId:     meta.VideoId,
		Title:       meta.Title,
		ChannelName: meta.ChannelName,
		Duration:    meta.Duration,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrGenerationFailed, err)
	}

	for {
		prefix, ok := stream.Next()
		if !ok {
			break
		}
		if onProgress != nil {
			onProgress(prefix)
		}
	}
	// A failed generation charges nothing, whatever partial text came out.
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrGenerationFailed, err)
	}

	summary := &entity.VideoSummary{
		Id:             uuid.New(),
		UserId:         user.Id,
		VideoURL:       req.URL,
		VideoId:        meta.VideoId,
		VideoTitle:     meta.Title,
		VideoThumbnail: meta.Thumbnail,
		VideoDuration:  meta.Duration,
		ChannelName:    meta.ChannelName,
		PublishedAt:    meta.PublishedAt,
		Summary:        stream.Text(),
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SummaryRepository().Create(ctx, summary); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	updatedUser, err := s.recorder.Record(ctx, user)
	if err != nil {
		return nil, err
	}

	s.notifySummaryCreated(ctx, summary)

	return &dto.SummarizeResponse{
		Summary: toSummaryDTO(summary),
		User:    ToUserDTO(updatedUser),
	}, nil
}

func (s *summarizerService) ListSummaries(ctx context.Context) ([]dto.SummaryDTO, error) {
	user := s.session.Current()
	if user == nil {
		return nil, dto.ErrNotAuthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	summaries, err := uow.SummaryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SummaryDTO, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, toSummaryDTO(sum))
	}
	return result, nil
}

func (s *summarizerService) DeleteSummary(ctx context.Context, id uuid.UUID) error {
	user := s.session.Current()
	if user == nil {
		return dto.ErrNotAuthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	summary, err := uow.SummaryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if summary == nil || summary.UserId != user.Id {
		return dto.ErrSummaryNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.SummaryRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

// resolveMetadata consults the short-lived cache before the external
// resolver. Resolver failures surface as ErrResolutionFailed; nothing is
// charged and nothing is cached.
func (s *summarizerService) resolveMetadata(ctx context.Context, videoId string) (*videometa.Metadata, error) {
	if cached, found := s.metaCache.Get(videoId); found {
		return cached.(*videometa.Metadata), nil
	}

	meta, err := s.resolver.Resolve(ctx, videoId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrResolutionFailed, err)
	}

	s.metaCache.Set(videoId, meta, cache.DefaultExpiration)
	return meta, nil
}

func (s *summarizerService) notifySummaryCreated(ctx context.Context, summary *entity.VideoSummary) {
	if s.publisherService != nil {
		payload, err := json.Marshal(dto.SummaryCreatedMessage{
			SummaryId:  summary.Id,
			UserId:     summary.UserId,
			VideoTitle: summary.VideoTitle,
		})
		if err == nil {
			if err := s.publisherService.Publish(ctx, payload); err != nil {
				fmt.Printf("[WARN] Failed to publish summary message: %v\n", err)
			}
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewSummaryCreated(summary.Id, summary.UserId, summary.VideoTitle)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUMMARY_CREATED event: %v\n", err)
		}
	}
}

func toSummaryDTO(s *entity.VideoSummary) dto.SummaryDTO {
	return dto.SummaryDTO{
		Id:             s.Id,
		VideoURL:       s.VideoURL,
		VideoTitle:     s.VideoTitle,
		VideoThumbnail: s.VideoThumbnail,
		VideoDuration:  s.VideoDuration,
		ChannelName:    s.ChannelName,
		PublishedAt:    s.PublishedAt,
		Summary:        s.Summary,
		CreatedAt:      s.CreatedAt,
	}
}
