// Code generated by ent, DO NOT EDIT.

package property

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/estatedesk/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldTitle, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldSlug, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCity, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCountry, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldPrice, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldPublished, v))
}

// MainImageURL applies equality check predicate on the "main_image_url" field. It's identical to MainImageURLEQ.
func MainImageURL(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldMainImageURL, v))
}

// Gallery applies equality check predicate on the "gallery" field. It's identical to GalleryEQ.
func Gallery(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldGallery, v))
}

// Beds applies equality check predicate on the "beds" field. It's identical to BedsEQ.
func Beds(v int) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldBeds, v))
}

// Baths applies equality check predicate on the "baths" field. It's identical to BathsEQ.
func Baths(v int) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldBaths, v))
}

// AreaSqm applies equality check predicate on the "area_sqm" field. It's identical to AreaSqmEQ.
func AreaSqm(v float64) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldAreaSqm, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldDescription, v))
}

// HeroTitle applies equality check predicate on the "hero_title" field. It's identical to HeroTitleEQ.
func HeroTitle(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldHeroTitle, v))
}

// HeroSubtitle applies equality check predicate on the "hero_subtitle" field. It's identical to HeroSubtitleEQ.
func HeroSubtitle(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldHeroSubtitle, v))
}

// CtaText applies equality check predicate on the "cta_text" field. It's identical to CtaTextEQ.
func CtaText(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCtaText, v))
}

// MetaTitle applies equality check predicate on the "meta_title" field. It's identical to MetaTitleEQ.
func MetaTitle(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldMetaTitle, v))
}

// MetaDescription applies equality check predicate on the "meta_description" field. It's identical to MetaDescriptionEQ.
func MetaDescription(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldMetaDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldTitle, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldSlug, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldCity, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldCountry, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldPrice, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldStatus, vs...))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldPublished, v))
}

// MainImageURLEQ applies the EQ predicate on the "main_image_url" field.
func MainImageURLEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldMainImageURL, v))
}

// MainImageURLNEQ applies the NEQ predicate on the "main_image_url" field.
func MainImageURLNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldMainImageURL, v))
}

// MainImageURLIn applies the In predicate on the "main_image_url" field.
func MainImageURLIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldMainImageURL, vs...))
}

// MainImageURLNotIn applies the NotIn predicate on the "main_image_url" field.
func MainImageURLNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldMainImageURL, vs...))
}

// MainImageURLGT applies the GT predicate on the "main_image_url" field.
func MainImageURLGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldMainImageURL, v))
}

// MainImageURLGTE applies the GTE predicate on the "main_image_url" field.
func MainImageURLGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldMainImageURL, v))
}

// MainImageURLLT applies the LT predicate on the "main_image_url" field.
func MainImageURLLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldMainImageURL, v))
}

// MainImageURLLTE applies the LTE predicate on the "main_image_url" field.
func MainImageURLLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldMainImageURL, v))
}

// MainImageURLContains applies the Contains predicate on the "main_image_url" field.
func MainImageURLContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldMainImageURL, v))
}

// MainImageURLHasPrefix applies the HasPrefix predicate on the "main_image_url" field.
func MainImageURLHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldMainImageURL, v))
}

// MainImageURLHasSuffix applies the HasSuffix predicate on the "main_image_url" field.
func MainImageURLHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldMainImageURL, v))
}

// MainImageURLIsNil applies the IsNil predicate on the "main_image_url" field.
func MainImageURLIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldMainImageURL))
}

// MainImageURLNotNil applies the NotNil predicate on the "main_image_url" field.
func MainImageURLNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldMainImageURL))
}

// MainImageURLEqualFold applies the EqualFold predicate on the "main_image_url" field.
func MainImageURLEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldMainImageURL, v))
}

// MainImageURLContainsFold applies the ContainsFold predicate on the "main_image_url" field.
func MainImageURLContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldMainImageURL, v))
}

// GalleryEQ applies the EQ predicate on the "gallery" field.
func GalleryEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldGallery, v))
}

// GalleryNEQ applies the NEQ predicate on the "gallery" field.
func GalleryNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldGallery, v))
}

// GalleryIn applies the In predicate on the "gallery" field.
func GalleryIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldGallery, vs...))
}

// GalleryNotIn applies the NotIn predicate on the "gallery" field.
func GalleryNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldGallery, vs...))
}

// GalleryGT applies the GT predicate on the "gallery" field.
func GalleryGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldGallery, v))
}

// GalleryGTE applies the GTE predicate on the "gallery" field.
func GalleryGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldGallery, v))
}

// GalleryLT applies the LT predicate on the "gallery" field.
func GalleryLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldGallery, v))
}

// GalleryLTE applies the LTE predicate on the "gallery" field.
func GalleryLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldGallery, v))
}

// GalleryContains applies the Contains predicate on the "gallery" field.
func GalleryContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldGallery, v))
}

// GalleryHasPrefix applies the HasPrefix predicate on the "gallery" field.
func GalleryHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldGallery, v))
}

// GalleryHasSuffix applies the HasSuffix predicate on the "gallery" field.
func GalleryHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldGallery, v))
}

// GalleryIsNil applies the IsNil predicate on the "gallery" field.
func GalleryIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldGallery))
}

// GalleryNotNil applies the NotNil predicate on the "gallery" field.
func GalleryNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldGallery))
}

// GalleryEqualFold applies the EqualFold predicate on the "gallery" field.
func GalleryEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldGallery, v))
}

// GalleryContainsFold applies the ContainsFold predicate on the "gallery" field.
func GalleryContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldGallery, v))
}

// BedsEQ applies the EQ predicate on the "beds" field.
func BedsEQ(v int) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldBeds, v))
}

// BedsNEQ applies the NEQ predicate on the "beds" field.
func BedsNEQ(v int) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldBeds, v))
}

// BedsIn applies the In predicate on the "beds" field.
func BedsIn(vs ...int) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldBeds, vs...))
}

// BedsNotIn applies the NotIn predicate on the "beds" field.
func BedsNotIn(vs ...int) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldBeds, vs...))
}

// BedsGT applies the GT predicate on the "beds" field.
func BedsGT(v int) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldBeds, v))
}

// BedsGTE applies the GTE predicate on the "beds" field.
func BedsGTE(v int) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldBeds, v))
}

// BedsLT applies the LT predicate on the "beds" field.
func BedsLT(v int) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldBeds, v))
}

// BedsLTE applies the LTE predicate on the "beds" field.
func BedsLTE(v int) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldBeds, v))
}

// BedsIsNil applies the IsNil predicate on the "beds" field.
func BedsIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldBeds))
}

// BedsNotNil applies the NotNil predicate on the "beds" field.
func BedsNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldBeds))
}

// BathsEQ applies the EQ predicate on the "baths" field.
func BathsEQ(v int) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldBaths, v))
}

// BathsNEQ applies the NEQ predicate on the "baths" field.
func BathsNEQ(v int) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldBaths, v))
}

// BathsIn applies the In predicate on the "baths" field.
func BathsIn(vs ...int) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldBaths, vs...))
}

// BathsNotIn applies the NotIn predicate on the "baths" field.
func BathsNotIn(vs ...int) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldBaths, vs...))
}

// BathsGT applies the GT predicate on the "baths" field.
func BathsGT(v int) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldBaths, v))
}

// BathsGTE applies the GTE predicate on the "baths" field.
func BathsGTE(v int) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldBaths, v))
}

// BathsLT applies the LT predicate on the "baths" field.
func BathsLT(v int) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldBaths, v))
}

// BathsLTE applies the LTE predicate on the "baths" field.
func BathsLTE(v int) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldBaths, v))
}

// BathsIsNil applies the IsNil predicate on the "baths" field.
func BathsIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldBaths))
}

// BathsNotNil applies the NotNil predicate on the "baths" field.
func BathsNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldBaths))
}

// AreaSqmEQ applies the EQ predicate on the "area_sqm" field.
func AreaSqmEQ(v float64) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldAreaSqm, v))
}

// AreaSqmNEQ applies the NEQ predicate on the "area_sqm" field.
func AreaSqmNEQ(v float64) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldAreaSqm, v))
}

// AreaSqmIn applies the In predicate on the "area_sqm" field.
func AreaSqmIn(vs ...float64) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldAreaSqm, vs...))
}

// AreaSqmNotIn applies the NotIn predicate on the "area_sqm" field.
func AreaSqmNotIn(vs ...float64) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldAreaSqm, vs...))
}

// AreaSqmGT applies the GT predicate on the "area_sqm" field.
func AreaSqmGT(v float64) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldAreaSqm, v))
}

// AreaSqmGTE applies the GTE predicate on the "area_sqm" field.
func AreaSqmGTE(v float64) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldAreaSqm, v))
}

// AreaSqmLT applies the LT predicate on the "area_sqm" field.
func AreaSqmLT(v float64) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldAreaSqm, v))
}

// AreaSqmLTE applies the LTE predicate on the "area_sqm" field.
func AreaSqmLTE(v float64) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldAreaSqm, v))
}

// AreaSqmIsNil applies the IsNil predicate on the "area_sqm" field.
func AreaSqmIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldAreaSqm))
}

// AreaSqmNotNil applies the NotNil predicate on the "area_sqm" field.
func AreaSqmNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldAreaSqm))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldDescription, v))
}

// HeroTitleEQ applies the EQ predicate on the "hero_title" field.
func HeroTitleEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldHeroTitle, v))
}

// HeroTitleNEQ applies the NEQ predicate on the "hero_title" field.
func HeroTitleNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldHeroTitle, v))
}

// HeroTitleIn applies the In predicate on the "hero_title" field.
func HeroTitleIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldHeroTitle, vs...))
}

// HeroTitleNotIn applies the NotIn predicate on the "hero_title" field.
func HeroTitleNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldHeroTitle, vs...))
}

// HeroTitleGT applies the GT predicate on the "hero_title" field.
func HeroTitleGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldHeroTitle, v))
}

// HeroTitleGTE applies the GTE predicate on the "hero_title" field.
func HeroTitleGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldHeroTitle, v))
}

// HeroTitleLT applies the LT predicate on the "hero_title" field.
func HeroTitleLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldHeroTitle, v))
}

// HeroTitleLTE applies the LTE predicate on the "hero_title" field.
func HeroTitleLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldHeroTitle, v))
}

// HeroTitleContains applies the Contains predicate on the "hero_title" field.
func HeroTitleContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldHeroTitle, v))
}

// HeroTitleHasPrefix applies the HasPrefix predicate on the "hero_title" field.
func HeroTitleHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldHeroTitle, v))
}

// HeroTitleHasSuffix applies the HasSuffix predicate on the "hero_title" field.
func HeroTitleHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldHeroTitle, v))
}

// HeroTitleIsNil applies the IsNil predicate on the "hero_title" field.
func HeroTitleIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldHeroTitle))
}

// HeroTitleNotNil applies the NotNil predicate on the "hero_title" field.
func HeroTitleNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldHeroTitle))
}

// HeroTitleEqualFold applies the EqualFold predicate on the "hero_title" field.
func HeroTitleEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldHeroTitle, v))
}

// HeroTitleContainsFold applies the ContainsFold predicate on the "hero_title" field.
func HeroTitleContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldHeroTitle, v))
}

// HeroSubtitleEQ applies the EQ predicate on the "hero_subtitle" field.
func HeroSubtitleEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldHeroSubtitle, v))
}

// HeroSubtitleNEQ applies the NEQ predicate on the "hero_subtitle" field.
func HeroSubtitleNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldHeroSubtitle, v))
}

// HeroSubtitleIn applies the In predicate on the "hero_subtitle" field.
func HeroSubtitleIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldHeroSubtitle, vs...))
}

// HeroSubtitleNotIn applies the NotIn predicate on the "hero_subtitle" field.
func HeroSubtitleNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldHeroSubtitle, vs...))
}

// HeroSubtitleGT applies the GT predicate on the "hero_subtitle" field.
func HeroSubtitleGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldHeroSubtitle, v))
}

// HeroSubtitleGTE applies the GTE predicate on the "hero_subtitle" field.
func HeroSubtitleGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldHeroSubtitle, v))
}

// HeroSubtitleLT applies the LT predicate on the "hero_subtitle" field.
func HeroSubtitleLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldHeroSubtitle, v))
}

// HeroSubtitleLTE applies the LTE predicate on the "hero_subtitle" field.
func HeroSubtitleLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldHeroSubtitle, v))
}

// HeroSubtitleContains applies the Contains predicate on the "hero_subtitle" field.
func HeroSubtitleContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldHeroSubtitle, v))
}

// HeroSubtitleHasPrefix applies the HasPrefix predicate on the "hero_subtitle" field.
func HeroSubtitleHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldHeroSubtitle, v))
}

// HeroSubtitleHasSuffix applies the HasSuffix predicate on the "hero_subtitle" field.
func HeroSubtitleHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldHeroSubtitle, v))
}

// HeroSubtitleIsNil applies the IsNil predicate on the "hero_subtitle" field.
func HeroSubtitleIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldHeroSubtitle))
}

// HeroSubtitleNotNil applies the NotNil predicate on the "hero_subtitle" field.
func HeroSubtitleNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldHeroSubtitle))
}

// HeroSubtitleEqualFold applies the EqualFold predicate on the "hero_subtitle" field.
func HeroSubtitleEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldHeroSubtitle, v))
}

// HeroSubtitleContainsFold applies the ContainsFold predicate on the "hero_subtitle" field.
func HeroSubtitleContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldHeroSubtitle, v))
}

// CtaTextEQ applies the EQ predicate on the "cta_text" field.
func CtaTextEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCtaText, v))
}

// CtaTextNEQ applies the NEQ predicate on the "cta_text" field.
func CtaTextNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldCtaText, v))
}

// CtaTextIn applies the In predicate on the "cta_text" field.
func CtaTextIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldCtaText, vs...))
}

// CtaTextNotIn applies the NotIn predicate on the "cta_text" field.
func CtaTextNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldCtaText, vs...))
}

// CtaTextGT applies the GT predicate on the "cta_text" field.
func CtaTextGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldCtaText, v))
}

// CtaTextGTE applies the GTE predicate on the "cta_text" field.
func CtaTextGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldCtaText, v))
}

// CtaTextLT applies the LT predicate on the "cta_text" field.
func CtaTextLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldCtaText, v))
}

// CtaTextLTE applies the LTE predicate on the "cta_text" field.
func CtaTextLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldCtaText, v))
}

// CtaTextContains applies the Contains predicate on the "cta_text" field.
func CtaTextContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldCtaText, v))
}

// CtaTextHasPrefix applies the HasPrefix predicate on the "cta_text" field.
func CtaTextHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldCtaText, v))
}

// CtaTextHasSuffix applies the HasSuffix predicate on the "cta_text" field.
func CtaTextHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldCtaText, v))
}

// CtaTextIsNil applies the IsNil predicate on the "cta_text" field.
func CtaTextIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldCtaText))
}

// CtaTextNotNil applies the NotNil predicate on the "cta_text" field.
func CtaTextNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldCtaText))
}

// CtaTextEqualFold applies the EqualFold predicate on the "cta_text" field.
func CtaTextEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldCtaText, v))
}

// CtaTextContainsFold applies the ContainsFold predicate on the "cta_text" field.
func CtaTextContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldCtaText, v))
}

// MetaTitleEQ applies the EQ predicate on the "meta_title" field.
func MetaTitleEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldMetaTitle, v))
}

// MetaTitleNEQ applies the NEQ predicate on the "meta_title" field.
func MetaTitleNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldMetaTitle, v))
}

// MetaTitleIn applies the In predicate on the "meta_title" field.
func MetaTitleIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldMetaTitle, vs...))
}

// MetaTitleNotIn applies the NotIn predicate on the "meta_title" field.
func MetaTitleNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldMetaTitle, vs...))
}

// MetaTitleGT applies the GT predicate on the "meta_title" field.
func MetaTitleGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldMetaTitle, v))
}

// MetaTitleGTE applies the GTE predicate on the "meta_title" field.
func MetaTitleGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldMetaTitle, v))
}

// MetaTitleLT applies the LT predicate on the "meta_title" field.
func MetaTitleLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldMetaTitle, v))
}

// MetaTitleLTE applies the LTE predicate on the "meta_title" field.
func MetaTitleLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldMetaTitle, v))
}

// MetaTitleContains applies the Contains predicate on the "meta_title" field.
func MetaTitleContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldMetaTitle, v))
}

// MetaTitleHasPrefix applies the HasPrefix predicate on the "meta_title" field.
func MetaTitleHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldMetaTitle, v))
}

// MetaTitleHasSuffix applies the HasSuffix predicate on the "meta_title" field.
func MetaTitleHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldMetaTitle, v))
}

// MetaTitleIsNil applies the IsNil predicate on the "meta_title" field.
func MetaTitleIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldMetaTitle))
}

// MetaTitleNotNil applies the NotNil predicate on the "meta_title" field.
func MetaTitleNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldMetaTitle))
}

// MetaTitleEqualFold applies the EqualFold predicate on the "meta_title" field.
func MetaTitleEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldMetaTitle, v))
}

// MetaTitleContainsFold applies the ContainsFold predicate on the "meta_title" field.
func MetaTitleContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldMetaTitle, v))
}

// MetaDescriptionEQ applies the EQ predicate on the "meta_description" field.
func MetaDescriptionEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldMetaDescription, v))
}

// MetaDescriptionNEQ applies the NEQ predicate on the "meta_description" field.
func MetaDescriptionNEQ(v string) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldMetaDescription, v))
}

// MetaDescriptionIn applies the In predicate on the "meta_description" field.
func MetaDescriptionIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldMetaDescription, vs...))
}

// MetaDescriptionNotIn applies the NotIn predicate on the "meta_description" field.
func MetaDescriptionNotIn(vs ...string) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldMetaDescription, vs...))
}

// MetaDescriptionGT applies the GT predicate on the "meta_description" field.
func MetaDescriptionGT(v string) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldMetaDescription, v))
}

// MetaDescriptionGTE applies the GTE predicate on the "meta_description" field.
func MetaDescriptionGTE(v string) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldMetaDescription, v))
}

// MetaDescriptionLT applies the LT predicate on the "meta_description" field.
func MetaDescriptionLT(v string) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldMetaDescription, v))
}

// MetaDescriptionLTE applies the LTE predicate on the "meta_description" field.
func MetaDescriptionLTE(v string) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldMetaDescription, v))
}

// MetaDescriptionContains applies the Contains predicate on the "meta_description" field.
func MetaDescriptionContains(v string) predicate.Property {
	return predicate.Property(sql.FieldContains(FieldMetaDescription, v))
}

// MetaDescriptionHasPrefix applies the HasPrefix predicate on the "meta_description" field.
func MetaDescriptionHasPrefix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasPrefix(FieldMetaDescription, v))
}

// MetaDescriptionHasSuffix applies the HasSuffix predicate on the "meta_description" field.
func MetaDescriptionHasSuffix(v string) predicate.Property {
	return predicate.Property(sql.FieldHasSuffix(FieldMetaDescription, v))
}

// MetaDescriptionIsNil applies the IsNil predicate on the "meta_description" field.
func MetaDescriptionIsNil() predicate.Property {
	return predicate.Property(sql.FieldIsNull(FieldMetaDescription))
}

// MetaDescriptionNotNil applies the NotNil predicate on the "meta_description" field.
func MetaDescriptionNotNil() predicate.Property {
	return predicate.Property(sql.FieldNotNull(FieldMetaDescription))
}

// MetaDescriptionEqualFold applies the EqualFold predicate on the "meta_description" field.
func MetaDescriptionEqualFold(v string) predicate.Property {
	return predicate.Property(sql.FieldEqualFold(FieldMetaDescription, v))
}

// MetaDescriptionContainsFold applies the ContainsFold predicate on the "meta_description" field.
func MetaDescriptionContainsFold(v string) predicate.Property {
	return predicate.Property(sql.FieldContainsFold(FieldMetaDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Property {
	return predicate.Property(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Property {
	return predicate.Property(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Property {
	return predicate.Property(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDeals applies the HasEdge predicate on the "deals" edge.
func HasDeals() predicate.Property {
	return predicate.Property(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DealsTable, DealsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDealsWith applies the HasEdge predicate on the "deals" edge with a given conditions (other predicates).
func HasDealsWith(preds ...predicate.Deal) predicate.Property {
	return predicate.Property(func(s *sql.Selector) {
		step := newDealsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivities applies the HasEdge predicate on the "activities" edge.
func HasActivities() predicate.Property {
	return predicate.Property(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivitiesWith applies the HasEdge predicate on the "activities" edge with a given conditions (other predicates).
func HasActivitiesWith(preds ...predicate.Activity) predicate.Property {
	return predicate.Property(func(s *sql.Selector) {
		step := newActivitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.Property {
	return predicate.Property(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.FormSubmission) predicate.Property {
	return predicate.Property(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Property) predicate.Property {
	return predicate.Property(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Property) predicate.Property {
	return predicate.Property(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Property) predicate.Property {
	return predicate.Property(sql.NotPredicates(p))
}
