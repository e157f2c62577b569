package forecast

import (
	"context"
	"errors"
	"testing"

	"terrafarm/internal/domain/climate"
	"terrafarm/internal/domain/farm"
)

type fakeSource struct {
	history climate.History
	err     error
}

func (s fakeSource) History(context.Context, farm.Location) (climate.History, error) {
	return s.history, s.err
}

func repeatDays(n int, d climate.DayRecord) []climate.DayRecord {
	days := make([]climate.DayRecord, n)
	for i := range days {
		days[i] = d
	}
	return days
}

func TestSignals_DrySpellRaisesDroughtRisk(t *testing.T) {
	dry := fakeSource{history: climate.History{
		Days: repeatDays(14, climate.DayRecord{TempMin: 20, TempMax: 33, Precipitation: 0}),
	}}
	wet := fakeSource{history: climate.History{
		Days: repeatDays(14, climate.DayRecord{TempMin: 15, TempMax: 25, Precipitation: 8}),
	}}
	loc := farm.Location{Latitude: 40}

	drySignals, err := Advisor{Source: dry}.Signals(context.Background(), loc)
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	wetSignals, err := Advisor{Source: wet}.Signals(context.Background(), loc)
	if err != nil {
		t.Fatalf("signals: %v", err)
	}

	if drySignals.Drought <= wetSignals.Drought {
		t.Fatalf("dry window %v must outrank wet window %v", drySignals.Drought, wetSignals.Drought)
	}
	if drySignals.Drought < 0.9 {
		t.Fatalf("two rainless hot weeks should score near 1, got %v", drySignals.Drought)
	}
}

func TestSignals_SubZeroNightsRaiseFrostRisk(t *testing.T) {
	cold := fakeSource{history: climate.History{
		Days: repeatDays(14, climate.DayRecord{TempMin: -8, TempMax: 2, Precipitation: 1}),
	}}

	signals, err := Advisor{Source: cold}.Signals(context.Background(), farm.Location{Latitude: 55})
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	if signals.Frost != 1 {
		t.Fatalf("sustained -8degC nights at high latitude must saturate, got %v", signals.Frost)
	}
}

func TestSignals_TropicsDampFrost(t *testing.T) {
	chilly := climate.History{
		Days: repeatDays(14, climate.DayRecord{TempMin: 3, TempMax: 20, Precipitation: 4}),
	}

	tropics, err := Advisor{Source: fakeSource{history: chilly}}.Signals(context.Background(), farm.Location{Latitude: 10})
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	temperate, err := Advisor{Source: fakeSource{history: chilly}}.Signals(context.Background(), farm.Location{Latitude: 40})
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	if tropics.Frost >= temperate.Frost {
		t.Fatalf("tropics %v must score below temperate %v", tropics.Frost, temperate.Frost)
	}
}

func TestSignals_ExtremeHeatRaisesHeatwaveRisk(t *testing.T) {
	scorching := fakeSource{history: climate.History{
		Days: repeatDays(14, climate.DayRecord{TempMin: 28, TempMax: 43, Precipitation: 0}),
	}}

	signals, err := Advisor{Source: scorching}.Signals(context.Background(), farm.Location{Latitude: 25})
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	if signals.Heatwave < 0.8 {
		t.Fatalf("two weeks above 40degC should score high, got %v", signals.Heatwave)
	}
}

func TestSignals_SignalsAreClamped(t *testing.T) {
	extreme := fakeSource{history: climate.History{
		Days: repeatDays(14, climate.DayRecord{TempMin: -20, TempMax: 50, Precipitation: 0}),
	}}

	signals, err := Advisor{Source: extreme}.Signals(context.Background(), farm.Location{Latitude: 48})
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	for name, v := range map[string]float64{
		"drought": signals.Drought, "frost": signals.Frost, "heatwave": signals.Heatwave,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s=%v outside [0,1]", name, v)
		}
	}
}

func TestSignals_EmptyHistoryMeansNoRisk(t *testing.T) {
	signals, err := Advisor{Source: fakeSource{}}.Signals(context.Background(), farm.Location{Latitude: 40})
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	if signals != (climate.RiskSignals{}) {
		t.Fatalf("empty history must yield zero signals: %+v", signals)
	}
}

func TestSignals_SourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("upstream down")
	_, err := Advisor{Source: fakeSource{err: wantErr}}.Signals(context.Background(), farm.Location{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestSignals_UsesOnlyRecentWindow(t *testing.T) {
	// Six frosty days followed by two mild weeks: the cold prefix falls
	// outside the 14-day window and must not affect the score.
	days := append(
		repeatDays(6, climate.DayRecord{TempMin: -10, TempMax: 0, Precipitation: 1}),
		repeatDays(14, climate.DayRecord{TempMin: 15, TempMax: 25, Precipitation: 5})...,
	)

	signals, err := Advisor{Source: fakeSource{history: climate.History{Days: days}}}.Signals(context.Background(), farm.Location{Latitude: 40})
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	if signals.Frost != 0 {
		t.Fatalf("frost=%v, want 0 when cold days fall outside the window", signals.Frost)
	}
}
