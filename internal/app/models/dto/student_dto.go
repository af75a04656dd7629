package dto

import (
	"github.com/dimasraf/sekolahku/internal/app/models"
)

// CreateStudentRequest carries the registration form fields.
// NISN is issued externally and must be exactly 10 digits; NIS is assigned
// by the server and never accepted on input.
type CreateStudentRequest struct {
	NISN              string            `json:"nisn" binding:"required,len=10,numeric"`
	NamaLengkap       string            `json:"nama_lengkap" binding:"required"`
	JenisKelamin      models.Gender     `json:"jenis_kelamin" binding:"required,oneof=LAKI_LAKI PEREMPUAN"`
	TempatLahir       string            `json:"tempat_lahir" binding:"required"`
	TanggalLahir      string            `json:"tanggal_lahir" binding:"required,datetime=2006-01-02"`
	AlamatJalan       string            `json:"alamat_jalan" binding:"required"`
	AlamatDusun       *string           `json:"alamat_dusun"`
	AlamatDesa        string            `json:"alamat_desa" binding:"required"`
	AlamatKecamatan   string            `json:"alamat_kecamatan" binding:"required"`
	NomorHP           string            `json:"nomor_hp" binding:"required,min=10"`
	Agama             models.Religion   `json:"agama" binding:"required,oneof=ISLAM KRISTEN KATOLIK HINDU BUDDHA KONGHUCU"`
	JumlahSaudara     *int              `json:"jumlah_saudara" binding:"required,gte=0"`
	AnakKe            int               `json:"anak_ke" binding:"required,gte=1"`
	TinggalBersama    models.LivingWith `json:"tinggal_bersama" binding:"required,oneof=ORANG_TUA WALI ASRAMA KOST LAINNYA"`
	AsalSekolah       string            `json:"asal_sekolah" binding:"required"`
	FotoSiswa         *string           `json:"foto_siswa"`
}

// UpdateStudentRequest carries a partial update: only fields present in the
// payload are applied. The two nullable columns use Optional so an explicit
// null (clear the value) is distinguishable from an omitted key.
type UpdateStudentRequest struct {
	NISN            *string            `json:"nisn" binding:"omitempty,len=10,numeric"`
	NamaLengkap     *string            `json:"nama_lengkap" binding:"omitempty,min=1"`
	JenisKelamin    *models.Gender     `json:"jenis_kelamin" binding:"omitempty,oneof=LAKI_LAKI PEREMPUAN"`
	TempatLahir     *string            `json:"tempat_lahir" binding:"omitempty,min=1"`
	TanggalLahir    *string            `json:"tanggal_lahir" binding:"omitempty,datetime=2006-01-02"`
	AlamatJalan     *string            `json:"alamat_jalan" binding:"omitempty,min=1"`
	AlamatDusun     Optional[string]   `json:"alamat_dusun"`
	AlamatDesa      *string            `json:"alamat_desa" binding:"omitempty,min=1"`
	AlamatKecamatan *string            `json:"alamat_kecamatan" binding:"omitempty,min=1"`
	NomorHP         *string            `json:"nomor_hp" binding:"omitempty,min=10"`
	Agama           *models.Religion   `json:"agama" binding:"omitempty,oneof=ISLAM KRISTEN KATOLIK HINDU BUDDHA KONGHUCU"`
	JumlahSaudara   *int               `json:"jumlah_saudara" binding:"omitempty,gte=0"`
	AnakKe          *int               `json:"anak_ke" binding:"omitempty,gte=1"`
	TinggalBersama  *models.LivingWith `json:"tinggal_bersama" binding:"omitempty,oneof=ORANG_TUA WALI ASRAMA KOST LAINNYA"`
	AsalSekolah     *string            `json:"asal_sekolah" binding:"omitempty,min=1"`
	FotoSiswa       Optional[string]   `json:"foto_siswa"`
}

// ListStudentsQuery carries the directory filters. Both filters are
// case-insensitive substring matches.
type ListStudentsQuery struct {
	NISN        string `form:"nisn"`
	NamaLengkap string `form:"nama_lengkap"`
	Limit       int    `form:"limit,default=50" binding:"omitempty,gte=1,lte=200"`
	Offset      int    `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// UploadPhotoResponse reports where an uploaded student photo is served from
type UploadPhotoResponse struct {
	FotoSiswa string `json:"foto_siswa"`
}
