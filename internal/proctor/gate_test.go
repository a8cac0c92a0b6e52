package proctor

import (
	"testing"
	"time"

	"github.com/ashureev/examwatch/internal/domain"
	"github.com/benbjohnson/clock"
)

func TestGateAcceptsFirstEvent(t *testing.T) {
	mock := clock.NewMock()
	g := NewGate(3*time.Second, mock)

	if !g.Accept(domain.NoFace) {
		t.Error("Expected first event to be accepted")
	}
}

func TestGateRejectsWithinCooldown(t *testing.T) {
	mock := clock.NewMock()
	g := NewGate(3*time.Second, mock)

	g.Accept(domain.CellPhone)
	mock.Add(2 * time.Second)

	if g.Accept(domain.CellPhone) {
		t.Error("Expected rejection 2s after acceptance with 3s cooldown")
	}
}

func TestGateAcceptsAfterCooldown(t *testing.T) {
	mock := clock.NewMock()
	g := NewGate(3*time.Second, mock)

	g.Accept(domain.CellPhone)
	mock.Add(3 * time.Second)

	if !g.Accept(domain.CellPhone) {
		t.Error("Expected acceptance exactly at the cooldown boundary")
	}
}

func TestGateRejectionDoesNotExtendCooldown(t *testing.T) {
	mock := clock.NewMock()
	g := NewGate(3*time.Second, mock)

	g.Accept(domain.NoFace)
	mock.Add(2 * time.Second)
	g.Accept(domain.NoFace) // rejected, must not reset the clock
	mock.Add(time.Second)

	if !g.Accept(domain.NoFace) {
		t.Error("Expected acceptance 3s after the original acceptance")
	}
}

func TestGateCategoriesIndependent(t *testing.T) {
	mock := clock.NewMock()
	g := NewGate(3*time.Second, mock)

	g.Accept(domain.CellPhone)
	mock.Add(time.Second)

	if !g.Accept(domain.NoFace) {
		t.Error("Expected noFace cooldown to be unaffected by cellPhone acceptance")
	}
}

func TestGateReset(t *testing.T) {
	mock := clock.NewMock()
	g := NewGate(3*time.Second, mock)

	g.Accept(domain.NoFace)
	g.Reset()

	if !g.Accept(domain.NoFace) {
		t.Error("Expected acceptance immediately after reset")
	}
}

func TestGateDefaultCooldown(t *testing.T) {
	mock := clock.NewMock()
	g := NewGate(0, mock)

	g.Accept(domain.NoFace)
	mock.Add(DefaultCooldown - time.Millisecond)
	if g.Accept(domain.NoFace) {
		t.Error("Expected rejection just before the default cooldown elapses")
	}
	mock.Add(time.Millisecond)
	if !g.Accept(domain.NoFace) {
		t.Error("Expected acceptance once the default cooldown elapsed")
	}
}
