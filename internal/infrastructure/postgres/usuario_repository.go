package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/entity"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario y devuelve el id generado.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int64, error) {
	query := `
		INSERT INTO usuarios_sistema (nombre_usuario, telefono_usuario, email_usuario, password_hash, id_rol, is_hidden)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id_usuario`
	var id int64
	err := r.q.QueryRow(ctx, query, u.Nombre, u.Telefono, u.Email, u.PasswordHash, u.RolID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// GetByID obtiene un usuario visible por ID con el nombre de su rol;
// una fila oculta no existe para las lecturas.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `
		SELECT u.id_usuario, u.nombre_usuario, u.telefono_usuario, u.email_usuario, u.password_hash, u.id_rol, ru.rol, u.is_hidden
		FROM usuarios_sistema u
		JOIN roles_usuario ru ON u.id_rol = ru.id_rol
		WHERE u.id_usuario = $1 AND u.is_hidden = FALSE`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByEmail obtiene un usuario por email con el nombre de su rol.
// Devuelve también filas ocultas, con la bandera cargada: el login y el
// reseteo de contraseña deciden qué hacer con ellas.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT u.id_usuario, u.nombre_usuario, u.telefono_usuario, u.email_usuario, u.password_hash, u.id_rol, ru.rol, u.is_hidden
		FROM usuarios_sistema u
		JOIN roles_usuario ru ON u.id_rol = ru.id_rol
		WHERE u.email_usuario = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, email))
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Telefono, &u.Email, &u.PasswordHash, &u.RolID, &u.Rol, &u.Oculto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// ListVisibles lista usuarios no ocultos.
func (r *UsuarioRepo) ListVisibles(ctx context.Context) ([]*entity.Usuario, error) {
	query := `
		SELECT u.id_usuario, u.nombre_usuario, u.telefono_usuario, u.email_usuario, u.password_hash, u.id_rol, ru.rol, u.is_hidden
		FROM usuarios_sistema u
		JOIN roles_usuario ru ON u.id_rol = ru.id_rol
		WHERE u.is_hidden = FALSE
		ORDER BY u.nombre_usuario`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Telefono, &u.Email, &u.PasswordHash, &u.RolID, &u.Rol, &u.Oculto); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza nombre, teléfono y email del usuario. Una fila
// oculta afecta cero filas, igual que una inexistente.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) (bool, error) {
	query := `
		UPDATE usuarios_sistema SET nombre_usuario = $2, telefono_usuario = $3, email_usuario = $4
		WHERE id_usuario = $1 AND is_hidden = FALSE`
	cmd, err := r.q.Exec(ctx, query, u.ID, u.Nombre, u.Telefono, u.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrEmailAlreadyExists
		}
		return false, fmt.Errorf("update usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Hide oculta el usuario; una fila ya oculta no se vuelve a afectar.
func (r *UsuarioRepo) Hide(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE usuarios_sistema SET is_hidden = TRUE WHERE id_usuario = $1 AND is_hidden = FALSE`, id)
	if err != nil {
		return false, fmt.Errorf("hide usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UsuarioRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if _, err := r.q.Exec(ctx,
		`UPDATE usuarios_sistema SET password_hash = $2 WHERE id_usuario = $1`, id, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// GetToken obtiene el token de recuperación vivo del usuario, si existe.
func (r *UsuarioRepo) GetToken(ctx context.Context, usuarioID int64) (*entity.TokenPassword, error) {
	var t entity.TokenPassword
	err := r.q.QueryRow(ctx,
		`SELECT id_usuario, token FROM tokens_password WHERE id_usuario = $1`, usuarioID,
	).Scan(&t.UsuarioID, &t.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}

// SaveToken guarda el token de recuperación del usuario.
func (r *UsuarioRepo) SaveToken(ctx context.Context, t *entity.TokenPassword) error {
	if _, err := r.q.Exec(ctx,
		`INSERT INTO tokens_password (id_usuario, token) VALUES ($1, $2)`, t.UsuarioID, t.Token); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// DeleteToken borra el token de recuperación del usuario.
func (r *UsuarioRepo) DeleteToken(ctx context.Context, usuarioID int64) error {
	if _, err := r.q.Exec(ctx,
		`DELETE FROM tokens_password WHERE id_usuario = $1`, usuarioID); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
