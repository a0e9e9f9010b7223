package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
	"github.com/raywall/vfs-tracker-services/pkg/authz"
)

type resolverFn func(ctx context.Context, sessionID string) (string, error)

func (f resolverFn) OwnerOf(ctx context.Context, sessionID string) (string, error) {
	return f(ctx, sessionID)
}

func TestCheckFileRead_Attachments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fileKey string
		userID  string
		allowed bool
	}{
		{"dono acessa", "attachments/u1/recording.wav", "u1", true},
		{"dono acessa com subpastas", "attachments/u1/2026/01/report.pdf", "u1", true},
		{"outro usuário negado", "attachments/u1/recording.wav", "u2", false},
		{"uploads segue a mesma regra", "uploads/u1/raw.bin", "u1", true},
		{"uploads de outro negado", "uploads/u1/raw.bin", "u2", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := authz.CheckFileRead(context.Background(), tc.fileKey, tc.userID, nil)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				var forbidden *apperr.ForbiddenError
				assert.ErrorAs(t, err, &forbidden)
			}
		})
	}
}

func TestCheckFileRead_AvatarsArePublic(t *testing.T) {
	t.Parallel()

	err := authz.CheckFileRead(context.Background(), "avatars/u1/avatar", "u2", nil)
	assert.NoError(t, err)
}

func TestCheckFileRead_UnknownPrefixDenied(t *testing.T) {
	t.Parallel()

	err := authz.CheckFileRead(context.Background(), "backups/u1/dump.tar", "u1", nil)

	var forbidden *apperr.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestCheckFileRead_VoiceTests(t *testing.T) {
	t.Parallel()

	sessions := resolverFn(func(_ context.Context, sessionID string) (string, error) {
		switch sessionID {
		case "sess-42":
			return "u1", nil
		case "sess-99":
			return "u2", nil
		default:
			return "", authz.ErrUnknownSession
		}
	})

	// Dono resolvido bate com o chamador
	err := authz.CheckFileRead(context.Background(), "voice-tests/sess-42/report.pdf", "u1", sessions)
	assert.NoError(t, err)

	// Dono resolvido é outro usuário
	err = authz.CheckFileRead(context.Background(), "voice-tests/sess-99/report.pdf", "u1", sessions)
	var forbidden *apperr.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)

	// Sessão inexistente nega sem distinguir de proibido
	err = authz.CheckFileRead(context.Background(), "voice-tests/sess-00/report.pdf", "u1", sessions)
	assert.ErrorAs(t, err, &forbidden)
}

func TestCheckFileRead_ResolverFailureIsDependencyError(t *testing.T) {
	t.Parallel()

	sessions := resolverFn(func(_ context.Context, _ string) (string, error) {
		return "", errors.New("dynamodb timeout")
	})

	err := authz.CheckFileRead(context.Background(), "voice-tests/sess-42/r.pdf", "u1", sessions)

	var dep *apperr.DependencyError
	assert.ErrorAs(t, err, &dep)
}

func TestCheckUploadKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fileKey   string
		userID    string
		wantErr   bool
		errTarget interface{}
	}{
		{"upload válido em attachments", "attachments/u1/file.wav", "u1", false, nil},
		{"upload válido em avatars", "avatars/u1/avatar", "u1", false, nil},
		{"upload válido em uploads", "uploads/u1/raw.bin", "u1", false, nil},
		{"menos de 3 segmentos é validação", "attachments/file.wav", "u1", true, &apperr.ValidationError{}},
		{"segmento vazio é validação", "attachments//file.wav", "u1", true, &apperr.ValidationError{}},
		{"mais de 3 segmentos é validação", "attachments/u1/a/b.wav", "u1", true, &apperr.ValidationError{}},
		{"pasta fora da allow-list nega mesmo com dono certo", "backups/u1/file.wav", "u1", true, &apperr.ForbiddenError{}},
		{"voice-tests não aceita upload direto", "voice-tests/u1/file.wav", "u1", true, &apperr.ForbiddenError{}},
		{"dono diferente nega", "attachments/u1/file.wav", "u2", true, &apperr.ForbiddenError{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := authz.CheckUploadKey(tc.fileKey, tc.userID)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			switch tc.errTarget.(type) {
			case *apperr.ValidationError:
				var target *apperr.ValidationError
				assert.ErrorAs(t, err, &target)
			case *apperr.ForbiddenError:
				var target *apperr.ForbiddenError
				assert.ErrorAs(t, err, &target)
			}
		})
	}
}

func TestCheckOwner(t *testing.T) {
	t.Parallel()

	assert.NoError(t, authz.CheckOwner("u1", "u1"))

	var forbidden *apperr.ForbiddenError
	assert.ErrorAs(t, authz.CheckOwner("u1", "u2"), &forbidden)

	var validation *apperr.ValidationError
	assert.ErrorAs(t, authz.CheckOwner("", "u2"), &validation)
}
