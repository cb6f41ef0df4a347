package i18n

var messages = map[string]map[string]string{
	"invalid_token": {
		"cs": "Neplatný přístupový token",
		"en": "Invalid access token",
	},
	"car_not_found": {
		"cs": "Auto nenalezeno",
		"en": "Car not found",
	},
	"car_not_yours": {
		"cs": "Auto nenalezeno nebo není vaše.",
		"en": "Car not found or doesn't belong to you.",
	},
	"invalid_car_id": {
		"cs": "Neplatný identifikátor auta.",
		"en": "Invalid car id.",
	},
	"user_has_car": {
		"cs": "Uživatel již má auto.",
		"en": "User already has a car.",
	},
	"email_registered": {
		"cs": "Email už je zaregistrovaný",
		"en": "Email is already registered",
	},
	"login_failed": {
		"cs": "Nesprávné přihlašovací údaje",
		"en": "Incorrect login credentials",
	},
	"invitation_exists": {
		"cs": "Pozvánka pro tento e-mail už existuje.",
		"en": "An invitation for this email already exists.",
	},
	"invitation_not_found": {
		"cs": "Pozvánka nebyla nalezena.",
		"en": "Invitation not found.",
	},
	"invitation_already_responded": {
		"cs": "Pozvánka již byla vyřízena.",
		"en": "Invitation has already been handled.",
	},
	"not_car_owner": {
		"cs": "Nemáte oprávnění k této pozvánce.",
		"en": "You are not authorized to manage this invitation.",
	},
	"invitation_not_yours": {
		"cs": "Tato pozvánka není určena pro váš účet.",
		"en": "This invitation does not belong to your account.",
	},
	"self_invite": {
		"cs": "Nemůžete pozvat sami sebe.",
		"en": "You cannot invite yourself.",
	},
	"user_in_car": {
		"cs": "Uživatel je již v tomto autě.",
		"en": "User is already in this car.",
	},
	"not_passenger": {
		"cs": "Nejste pasažér v žádném autě.",
		"en": "You are not a passenger in any car.",
	},
	"seat_already_taken": {
		"cs": "Toto místo je již obsazené.",
		"en": "This seat is already taken.",
	},
	"user_in_seat": {
		"cs": "Již máte přiřazené místo.",
		"en": "You already have an assigned seat.",
	},
	"user_not_in_seat": {
		"cs": "Nemáte přiřazené místo.",
		"en": "You do not have an assigned seat.",
	},
	"same_seat": {
		"cs": "Na tomto místě už sedíte.",
		"en": "You are already on this seat.",
	},
	"invalid_position": {
		"cs": "Neplatná pozice sedadla pro toto auto.",
		"en": "Invalid seat position for this car.",
	},
	"driver_not_found": {
		"cs": "Řidič nenalezen.",
		"en": "Driver not found.",
	},
	"no_active_driver": {
		"cs": "Auto nemá aktivního řidiče.",
		"en": "The car has no active driver.",
	},
	"driver_assignment_conflict": {
		"cs": "Přiřazení řidiče se nezdařilo, zkuste to prosím znovu.",
		"en": "Driver assignment failed, please try again.",
	},
	"user_not_found": {
		"cs": "Uživatel nenalezen.",
		"en": "User not found.",
	},
	"not_implemented": {
		"cs": "Zatím neimplementováno.",
		"en": "Not implemented yet.",
	},
	"internal_error": {
		"cs": "Interní chyba serveru.",
		"en": "Internal server error.",
	},
}
