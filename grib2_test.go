package grib

import (
	"context"
	"testing"
	"time"
)

func TestParseMessagesWithOptions(t *testing.T) {
	data := makeCompleteGRIB2Message()

	messages, err := ParseMessagesWithOptions(data)
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	msg := messages[0]

	values, err := msg.Data()
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}
	if len(values) != 9 {
		t.Errorf("expected 9 data values, got %d", len(values))
	}

	lats, lons, err := msg.Coordinates()
	if err != nil {
		t.Fatalf("Coordinates failed: %v", err)
	}
	if len(lats) != 9 {
		t.Errorf("expected 9 latitudes, got %d", len(lats))
	}
	if len(lons) != 9 {
		t.Errorf("expected 9 longitudes, got %d", len(lons))
	}

	if msg.Section0.DisciplineName() == "" {
		t.Error("DisciplineName is empty")
	}
	if msg.Section1.CenterName() == "" {
		t.Error("CenterName is empty")
	}
	if msg.Section1.ReferenceTime.IsZero() {
		t.Error("ReferenceTime is zero")
	}
}

func TestParseMessagesWithOptionsMultiple(t *testing.T) {
	data := makeMultipleMessages(5)

	messages, err := ParseMessagesWithOptions(data)
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	if len(messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(messages))
	}

	for i, msg := range messages {
		if msg == nil {
			t.Errorf("message %d is nil", i)
			continue
		}
		values, err := msg.Data()
		if err != nil || len(values) == 0 {
			t.Errorf("message %d has no data", i)
		}
	}
}

func TestParseMessagesWithOptionsWorkers(t *testing.T) {
	data := makeMultipleMessages(10)

	messages, err := ParseMessagesWithOptions(data, WithWorkers(4))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	if len(messages) != 10 {
		t.Fatalf("expected 10 messages, got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsSequential(t *testing.T) {
	data := makeMultipleMessages(5)

	messages, err := ParseMessagesWithOptions(data, WithSequential())
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	if len(messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsContext(t *testing.T) {
	data := makeCompleteGRIB2Message()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := ParseMessagesWithOptions(data, WithContext(ctx))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsFilter(t *testing.T) {
	data := makeMultipleMessages(10)

	count := 0
	filter := func(msg *Message) bool {
		count++
		return count%2 == 0
	}

	messages, err := ParseMessagesWithOptions(data, WithFilter(filter))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	if len(messages) != 5 {
		t.Fatalf("expected 5 messages (50%% filtered), got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsParameterCategory(t *testing.T) {
	data := makeCompleteGRIB2Message()

	messages, err := ParseMessagesWithOptions(data, WithParameterCategory(0))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	messages, err = ParseMessagesWithOptions(data, WithParameterCategory(99))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected 0 messages (filtered out), got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsDiscipline(t *testing.T) {
	data := makeCompleteGRIB2Message()

	messages, err := ParseMessagesWithOptions(data, WithDiscipline(0))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	messages, err = ParseMessagesWithOptions(data, WithDiscipline(99))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected 0 messages (filtered out), got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsCenter(t *testing.T) {
	data := makeCompleteGRIB2Message()

	messages, err := ParseMessagesWithOptions(data, WithCenter(7))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
}

func TestMinMaxValue(t *testing.T) {
	data := makeCompleteGRIB2Message()

	messages, err := ParseMessagesWithOptions(data)
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	values, err := messages[0].Data()
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}

	// Data values are 250.0, 251.0, ..., 258.0
	if min := MinValue(values); min != 250.0 {
		t.Errorf("MinValue: got %.1f, want 250.0", min)
	}
	if max := MaxValue(values); max != 258.0 {
		t.Errorf("MaxValue: got %.1f, want 258.0", max)
	}
}

func TestCountValid(t *testing.T) {
	data := makeCompleteGRIB2Message()

	messages, err := ParseMessagesWithOptions(data)
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	values, err := messages[0].Data()
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}

	if count := CountValid(values); count != 9 {
		t.Errorf("CountValid: got %d, want 9", count)
	}
}

func TestMessageStringWithOptions(t *testing.T) {
	data := makeCompleteGRIB2Message()

	messages, err := ParseMessagesWithOptions(data)
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	str := messages[0].String()
	if str == "" {
		t.Error("String() returned empty string")
	}
	if len(str) < 20 {
		t.Errorf("String() too short: %q", str)
	}
}

func TestParseMessagesWithOptionsEmpty(t *testing.T) {
	messages, err := ParseMessagesWithOptions([]byte{})
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions with empty data failed: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected 0 messages, got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsInvalid(t *testing.T) {
	messages, err := ParseMessagesWithOptions([]byte("invalid data"))
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions should silently skip invalid data, got error: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected 0 messages for invalid data, got %d", len(messages))
	}
}

func TestParseMessagesWithOptionsCombined(t *testing.T) {
	data := makeMultipleMessages(10)

	messages, err := ParseMessagesWithOptions(data,
		WithWorkers(2),
		WithParameterCategory(0),
		WithDiscipline(0),
	)
	if err != nil {
		t.Fatalf("ParseMessagesWithOptions failed: %v", err)
	}

	// All test messages have category 0 and discipline 0
	if len(messages) != 10 {
		t.Fatalf("expected 10 messages, got %d", len(messages))
	}
}

func BenchmarkParseMessagesWithOptions(b *testing.B) {
	data := makeMultipleMessages(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseMessagesWithOptions(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMessagesWithOptionsWorkers4(b *testing.B) {
	data := makeMultipleMessages(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseMessagesWithOptions(data, WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMessagesWithOptionsSequential(b *testing.B) {
	data := makeMultipleMessages(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseMessagesWithOptions(data, WithSequential()); err != nil {
			b.Fatal(err)
		}
	}
}
