package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Итоги пакетного расчета; ошибка по карте не останавливает расчет
type BatchReport struct {
	FeeYear   int               `json:"fee_year"`
	Total     int               `json:"total"`
	Waived    int               `json:"waived"`
	NotWaived int               `json:"not_waived"`
	Failed    map[string]string `json:"failed"`
	Cancelled bool              `json:"cancelled"`
}

// Расчет всех активных карт за год. После отмены новые карты не запускаются, начатые доводятся до конца
func (s *WaiverService) RunBatch(ctx context.Context, feeYear int, evaluationDate time.Time, concurrency int) (BatchReport, error) {
	start := time.Now()
	defer func() { batchDuration.Observe(time.Since(start).Seconds()) }()

	report := BatchReport{FeeYear: feeYear, Failed: make(map[string]string)}

	cards, err := s.cards.ListActiveCards(ctx)
	if err != nil {
		return report, fmt.Errorf("list active cards: %w", err)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	g := &errgroup.Group{}
	semaphore := make(chan struct{}, concurrency)

loop:
	for _, card := range cards {
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			report.Cancelled = true
			break loop
		}
		// слот и отмена могли быть готовы одновременно
		if ctx.Err() != nil {
			<-semaphore
			report.Cancelled = true
			break
		}
		g.Go(func() error {
			defer func() { <-semaphore }()
			_, decision, err := s.EvaluateCard(context.WithoutCancel(ctx), card.ID, feeYear, evaluationDate)

			mu.Lock()
			defer mu.Unlock()
			report.Total++
			switch {
			case err != nil:
				report.Failed[card.ID] = err.Error()
				batchCardsTotal.WithLabelValues("failed").Inc()
				s.logger.Error("batch evaluation failed",
					zap.String("card_id", card.ID),
					zap.Int("fee_year", feeYear),
					zap.Error(err),
				)
			case decision.IsWaived:
				report.Waived++
				batchCardsTotal.WithLabelValues("waived").Inc()
			default:
				report.NotWaived++
				batchCardsTotal.WithLabelValues("not_waived").Inc()
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("batch run finished",
		zap.Int("fee_year", feeYear),
		zap.Int("total", report.Total),
		zap.Int("waived", report.Waived),
		zap.Int("not_waived", report.NotWaived),
		zap.Int("failed", len(report.Failed)),
		zap.Bool("cancelled", report.Cancelled),
		zap.Duration("duration", time.Since(start)),
	)
	return report, nil
}
