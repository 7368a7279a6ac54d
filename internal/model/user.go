package model

// User — учётная запись, хранимая в репозитории. Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// Credential — элемент allow-list: логин и пароль в открытом виде, используется только при начальном заполнении.
type Credential struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}
