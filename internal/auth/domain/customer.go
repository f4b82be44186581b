package domain

// PersonalInfo holds the optional profile fields embedded in a Customer.
// Every field may be empty independently of the others.
type PersonalInfo struct {
	FirstName      string `bson:"first_name" json:"first_name"`
	LastName       string `bson:"last_name" json:"last_name"`
	Address        string `bson:"address" json:"address"`
	City           string `bson:"city" json:"city"`
	Country        string `bson:"country" json:"country"`
	ZipCode        string `bson:"zip_code" json:"zip_code"`
	ProfilePicture string `bson:"profile_picture" json:"profile_picture"`
}

// Customer is a registered account. Email is the effective unique key;
// the customers collection carries a unique index on it.
type Customer struct {
	ID           string       `bson:"_id,omitempty" json:"_id"`
	Username     string       `bson:"username" json:"username"`
	Email        string       `bson:"email" json:"email"`
	Password     string       `bson:"password" json:"-"` // bcrypt hash, never serialized
	PhoneNumber  string       `bson:"phone_number" json:"phone_number"`
	PersonalInfo PersonalInfo `bson:"personal_info" json:"personal_info"`
}

// Sanitized returns a copy safe to hand back to callers, with the
// stored credential stripped.
func (c Customer) Sanitized() Customer {
	c.Password = ""
	return c
}
