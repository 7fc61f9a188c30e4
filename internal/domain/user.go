package domain

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Nombre       string
	Apellido     string
	Correo       string
	Role         Role
}

// Profile is the serializable view of a user. Password hashes never leave
// the domain through this type.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Role     string `json:"role"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Correo:   u.Correo,
		Role:     string(u.Role),
	}
}

// ProfileUpdate carries the fields a user may edit on their own profile.
// Username, password and role are deliberately absent.
type ProfileUpdate struct {
	Nombre   *string
	Apellido *string
	Correo   *string
}
