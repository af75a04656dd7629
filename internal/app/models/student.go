package models

import (
	"time"
)

// Student defines the student model based on the 'students' table.
// NISN is the externally issued national student number; NIS is assigned
// internally at registration time and stays NULL until then.
type Student struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	NISN            string     `json:"nisn" db:"nisn" example:"1234567890"`
	NIS             *string    `json:"nis" db:"nis" example:"20240001"`
	NamaLengkap     string     `json:"nama_lengkap" db:"nama_lengkap" example:"Budi Santoso"`
	JenisKelamin    Gender     `json:"jenis_kelamin" db:"jenis_kelamin" example:"LAKI_LAKI"`
	TempatLahir     string     `json:"tempat_lahir" db:"tempat_lahir" example:"Bandung"`
	TanggalLahir    time.Time  `json:"tanggal_lahir" db:"tanggal_lahir"`
	AlamatJalan     string     `json:"alamat_jalan" db:"alamat_jalan"`
	AlamatDusun     *string    `json:"alamat_dusun" db:"alamat_dusun"`
	AlamatDesa      string     `json:"alamat_desa" db:"alamat_desa"`
	AlamatKecamatan string     `json:"alamat_kecamatan" db:"alamat_kecamatan"`
	NomorHP         string     `json:"nomor_hp" db:"nomor_hp" example:"081234567890"`
	Agama           Religion   `json:"agama" db:"agama" example:"ISLAM"`
	JumlahSaudara   int        `json:"jumlah_saudara" db:"jumlah_saudara" example:"2"`
	AnakKe          int        `json:"anak_ke" db:"anak_ke" example:"1"`
	TinggalBersama  LivingWith `json:"tinggal_bersama" db:"tinggal_bersama" example:"ORANG_TUA"`
	AsalSekolah     string     `json:"asal_sekolah" db:"asal_sekolah"`
	FotoSiswa       *string    `json:"foto_siswa" db:"foto_siswa"`
	UserID          *int64     `json:"user_id" db:"user_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
