package models

// ImageFile — загружаемый файл изображения, пересекающий границу сервиса.
// Явный value-тип вместо framework-специфичного upload-объекта.
type ImageFile struct {
	Bytes       []byte
	Filename    string
	ContentType string
}
